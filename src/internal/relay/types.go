package relay

import "github.com/maksimkurb/keen-log/src/internal/config"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// LogRequest is the body of POST /api/v1/log/{severity}.
type LogRequest struct {
	Message string `json:"message"`
}

// LogResponse acknowledges a dispatched event.
type LogResponse struct {
	Severity string `json:"severity"`
}

// ConfigResponse returns the published configuration in file form.
type ConfigResponse struct {
	Config *config.Config `json:"config"`
}
