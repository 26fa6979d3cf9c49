// Package errors provides domain-specific error types for keen-log.
//
// Every error carries an ErrorCode so callers can match error kinds with the
// standard library's errors.Is against the exported sentinels, regardless of
// the message or the wrapped cause.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in keen-log.
type ErrorCode string

const (
	// ErrCodeUnselectedSeverity indicates a per-severity builder setter was called
	// before any severity was selected.
	ErrCodeUnselectedSeverity ErrorCode = "UNSELECTED_SEVERITY"

	// ErrCodeInvalidSeverity indicates an attempt to use the unset severity sentinel
	// (or an out-of-range severity value).
	ErrCodeInvalidSeverity ErrorCode = "INVALID_SEVERITY"

	// ErrCodeConfigLock indicates the configuration store could not be used.
	ErrCodeConfigLock ErrorCode = "CONFIG_LOCK_ERROR"

	// ErrCodeSinkIO indicates a file sink could not be opened or written.
	ErrCodeSinkIO ErrorCode = "SINK_IO_ERROR"

	// ErrCodeSinkRequest indicates a webhook sink request failed.
	ErrCodeSinkRequest ErrorCode = "SINK_REQUEST_ERROR"

	// ErrCodeConfig indicates a configuration file could not be loaded or parsed.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Sentinels for use with errors.Is. Matching is by code only.
var (
	ErrUnselectedSeverity = New(ErrCodeUnselectedSeverity, "no severity selected")
	ErrInvalidSeverity    = New(ErrCodeInvalidSeverity, "invalid severity")
	ErrConfigurationLock  = New(ErrCodeConfigLock, "configuration store unavailable")
	ErrSinkIO             = New(ErrCodeSinkIO, "file sink failed")
	ErrSinkRequest        = New(ErrCodeSinkRequest, "webhook sink failed")
	ErrConfig             = New(ErrCodeConfig, "configuration error")
	ErrValidation         = New(ErrCodeValidation, "validation failed")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewUnselectedSeverityError reports a setter used before Select.
func NewUnselectedSeverityError(message string) *Error {
	return New(ErrCodeUnselectedSeverity, message)
}

// NewInvalidSeverityError reports an unusable severity value.
func NewInvalidSeverityError(message string) *Error {
	return New(ErrCodeInvalidSeverity, message)
}

// NewConfigLockError reports that the configuration store cannot be read or replaced.
func NewConfigLockError(message string, cause error) *Error {
	return Wrap(ErrCodeConfigLock, message, cause)
}

// NewSinkIOError creates a new file sink error.
func NewSinkIOError(message string, cause error) *Error {
	return Wrap(ErrCodeSinkIO, message, cause)
}

// NewSinkRequestError creates a new webhook sink error.
func NewSinkRequestError(message string, cause error) *Error {
	return Wrap(ErrCodeSinkRequest, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}
