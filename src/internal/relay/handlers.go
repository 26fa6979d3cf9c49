package relay

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-log/src/internal/config"
	kerrors "github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/log"
	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Emitter is the logger the relay forwards to.
type Emitter interface {
	Emit(sev severity.Severity, msg string)
	Store() *config.Store
}

// Handler manages all API endpoints and dependencies.
type Handler struct {
	emitter Emitter
}

// NewHandler creates a new API handler forwarding to emitter.
func NewHandler(emitter Emitter) *Handler {
	return &Handler{emitter: emitter}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// EmitLog dispatches one event.
// POST /api/v1/log/{severity}
func (h *Handler) EmitLog(w http.ResponseWriter, r *http.Request) {
	sev, err := severity.Parse(chi.URLParam(r, "severity"))
	if err != nil {
		writeError(w, ErrCodeNotFound, "severity "+chi.URLParam(r, "severity")+" not found", nil)
		return
	}

	var req LogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, ErrCodeInvalidRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if req.Message == "" {
		writeError(w, ErrCodeValidationFailed, "Message is required", map[string]interface{}{"field": "message"})
		return
	}

	h.emitter.Emit(sev, req.Message)
	writeJSON(w, http.StatusAccepted, LogResponse{Severity: sev.String()})
}

// GetConfig returns the published configuration.
// GET /api/v1/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.emitter.Store().Read()
	if err != nil {
		writeError(w, ErrCodeConfigUnavailable, err.Error(), nil)
		return
	}
	writeJSONData(w, ConfigResponse{Config: config.FromConfiguration(cfg)})
}

// ReplaceConfig validates the document, builds it and publishes it as one
// snapshot.
// PUT /api/v1/config
func (h *Handler) ReplaceConfig(w http.ResponseWriter, r *http.Request) {
	var doc config.Config
	if err := decodeJSON(w, r, &doc); err != nil {
		writeError(w, ErrCodeInvalidRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if fixed := startupOnly(&doc); len(fixed) > 0 {
		writeError(w, ErrCodeValidationFailed, "Settings fixed at startup cannot be replaced", validationDetails(fixed))
		return
	}

	if err := doc.ValidateConfig(); err != nil {
		var validationErrors config.ValidationErrors
		if errors.As(err, &validationErrors) {
			writeError(w, ErrCodeValidationFailed, "Configuration validation failed", validationDetails(validationErrors))
			return
		}
		writeError(w, ErrCodeInvalidRequest, err.Error(), nil)
		return
	}

	store := h.emitter.Store()
	if err := doc.Build(store); err != nil {
		if errors.Is(err, kerrors.ErrConfigurationLock) {
			writeError(w, ErrCodeConfigUnavailable, err.Error(), nil)
			return
		}
		writeError(w, ErrCodeInvalidRequest, err.Error(), nil)
		return
	}
	log.Infof("Configuration replaced")

	cfg, err := store.Read()
	if err != nil {
		writeError(w, ErrCodeConfigUnavailable, err.Error(), nil)
		return
	}
	writeJSONData(w, ConfigResponse{Config: config.FromConfiguration(cfg)})
}

// Health reports whether the configuration store is usable.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := h.emitter.Store().Read(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("UNAVAILABLE"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// startupOnly reports keys of doc that configure the running process rather
// than the published snapshot. They are read once when the relay starts.
func startupOnly(doc *config.Config) config.ValidationErrors {
	var fixed config.ValidationErrors
	if doc.ColorMode != "" {
		fixed = append(fixed, config.ValidationError{
			FieldPath: "color_mode",
			Message:   "set at startup; restart the relay with an updated configuration file",
		})
	}
	if doc.WebhookTimeoutSec != 0 {
		fixed = append(fixed, config.ValidationError{
			FieldPath: "webhook_timeout_sec",
			Message:   "set at startup; restart the relay with an updated configuration file",
		})
	}
	return fixed
}

func validationDetails(validationErrors config.ValidationErrors) map[string]interface{} {
	fields := make([]map[string]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, map[string]string{
			"field":   ve.FieldPath,
			"message": ve.Message,
		})
	}
	return map[string]interface{}{"errors": fields}
}
