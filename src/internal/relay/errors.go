package relay

import (
	"encoding/json"
	"net/http"
)

// ErrorCode is the machine-readable "code" of an error response.
type ErrorCode string

const (
	ErrCodeInvalidRequest       ErrorCode = "invalid_request"
	ErrCodeNotFound             ErrorCode = "not_found"
	ErrCodeValidationFailed     ErrorCode = "validation_failed"
	ErrCodeUnsupportedMediaType ErrorCode = "unsupported_media_type"
	ErrCodeConfigUnavailable    ErrorCode = "config_unavailable"
	ErrCodeInternalError        ErrorCode = "internal_error"
)

// statusOf maps each code to the one HTTP status the relay answers it with.
var statusOf = map[ErrorCode]int{
	ErrCodeInvalidRequest:       http.StatusBadRequest,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeValidationFailed:     http.StatusBadRequest,
	ErrCodeUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrCodeConfigUnavailable:    http.StatusServiceUnavailable,
	ErrCodeInternalError:        http.StatusInternalServerError,
}

// APIError is the body of every failed request:
// {"error":{"code":"...","message":"...","details":{...}}}.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// writeError answers with the status belonging to code.
func writeError(w http.ResponseWriter, code ErrorCode, message string, details map[string]interface{}) {
	status, ok := statusOf[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: APIError{Code: code, Message: message, Details: details}})
}
