package server

import (
	"aimlab/internal/wshub"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

const spectatorBuffer = 32

type Server struct {
	Hub *wshub.Hub
}

// handleSpectate upgrades to a read-only websocket that receives every game event.
func (s *Server) handleSpectate(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[Spectator] accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	// Spectators never send anything; CloseRead handles control frames
	// and cancels ctx once the peer goes away.
	ctx := conn.CloseRead(r.Context())

	client := &wshub.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, spectatorBuffer),
	}
	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ID)

	hello, err := json.Marshal(wshub.ServerMessage{Type: "hello", ID: client.ID})
	if err != nil {
		log.Printf("[Spectator] marshal error: %v\n", err)
		return
	}
	client.Send <- hello

	log.Printf("[Spectator] %s connected (%d watching)\n", client.ID, s.Hub.Count())
	client.WritePump(ctx)
	log.Printf("[Spectator] %s disconnected\n", client.ID)

	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","spectators":%d}`, s.Hub.Count())
}
