package relay

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/maksimkurb/keen-log/src/internal/log"
)

// Server represents the relay HTTP server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new relay server forwarding to emitter
func NewServer(emitter Emitter, bindAddr string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      NewRouter(emitter),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start serves until Stop is called
func (s *Server) Start() error {
	log.Infof("[relay] Starting server on %s", s.httpServer.Addr)
	log.Infof("[relay] Example: curl -X POST -d '{\"message\":\"hi\"}' http://%s/api/v1/log/info", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the relay server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[relay] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
