package server

import (
	"aimlab/internal/wshub"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Routes returns the spectator HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleSpectate)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Run serves spectators on addr until ctx is cancelled.
func Run(ctx context.Context, addr string, hub *wshub.Hub) error {
	srv := &Server{Hub: hub}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Spectator] shutdown error: %v\n", err)
		}
	}()

	fmt.Printf("Spectator feed listening on ws://%s/ws\n", addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving spectators: %w", err)
	}
	return nil
}
