package wshub

import (
	"aimlab/internal/events"
	"context"
	"encoding/json"
	"log"
	"math"
	"sync"

	"github.com/coder/websocket"
)

// ServerMessage is the JSON structure sent to spectators.
type ServerMessage struct {
	Type       string `json:"t"`
	RoundID    string `json:"r,omitempty"`
	ID         string `json:"id,omitempty"`
	Score      int    `json:"s"`
	TimeLeft   int    `json:"tl"`
	Hit        bool   `json:"h,omitempty"`
	X          int    `json:"x,omitempty"`
	Y          int    `json:"y,omitempty"`
	TargetID   int    `json:"tid,omitempty"`
	ReactionMs int    `json:"ms,omitempty"`
	Aborted    bool   `json:"a,omitempty"`
}

// MessageFor converts a game event to its wire form.
func MessageFor(ev events.Event) ServerMessage {
	return ServerMessage{
		Type:       string(ev.Kind),
		RoundID:    ev.RoundID,
		Score:      ev.Score,
		TimeLeft:   int(math.Floor(ev.TimeLeft)),
		Hit:        ev.Hit,
		X:          int(ev.X),
		Y:          int(ev.Y),
		TargetID:   ev.TargetID,
		ReactionMs: ev.ReactionMs,
		Aborted:    ev.Aborted,
	}
}

// Client represents a single spectator connection in the hub.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages spectator connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client and closes its Send channel, then tells the
// remaining spectators it left.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		close(c.Send)
		delete(h.clients, id)
	}
	h.mu.Unlock()

	if ok {
		h.Broadcast(ServerMessage{Type: "leave", ID: id})
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every client. Non-blocking: drops if a channel is full.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}

// Pump forwards game events to every spectator until ctx is done or the
// event channel closes.
func (h *Hub) Pump(ctx context.Context, in <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				return
			}
			h.Broadcast(MessageFor(ev))
		}
	}
}
