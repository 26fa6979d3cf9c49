package relay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(emitter Emitter) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery(emitter))
	r.Use(Logger)
	r.Use(JSONContentType)

	h := NewHandler(emitter)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/log/{severity}", h.EmitLog)

		r.Get("/config", h.GetConfig)
		r.Put("/config", h.ReplaceConfig)
	})

	r.Get("/health", h.Health)

	return r
}
