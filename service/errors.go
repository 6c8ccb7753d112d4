package service

import "errors"

// Sentinel errors handlers map onto HTTP statuses
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNoLocation         = errors.New("No location set")
)

// ValidationError is a client-input or external-resolution failure.
// Handlers surface its message with a 400 status.
type ValidationError struct {
	msg string
}

// NewValidationError creates a validation error with a client-facing message
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// UpstreamError wraps a failure of the external data provider itself,
// as opposed to a lookup that resolved to nothing
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
