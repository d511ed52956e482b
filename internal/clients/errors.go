package clients

import (
	"errors"
	"fmt"

	"lyra/internal/schema"
)

// ErrorKind classifies an API failure for callers deciding whether to
// retry.
type ErrorKind string

const (
	// ErrNetwork means no response was received at all. Retryable.
	ErrNetwork ErrorKind = "network"
	// ErrTimeout means the request exceeded the configured deadline. Retryable.
	ErrTimeout ErrorKind = "timeout"
	// ErrServer means the remote answered with a 5xx. Retryable.
	ErrServer ErrorKind = "server"
	// ErrClient means the remote answered with a 4xx other than 404. Not
	// retryable; usually a caller bug.
	ErrClient ErrorKind = "client"
	// ErrNotFound means the requested id does not exist upstream. Not
	// retryable.
	ErrNotFound ErrorKind = "not_found"
	// ErrValidation means a response arrived but failed schema validation,
	// which indicates upstream contract drift. Not retryable.
	ErrValidation ErrorKind = "validation"
)

// APIError is the normalized failure surfaced by the SpaceX client.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("spacex api: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("spacex api: %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a caller-side retry could plausibly succeed.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case ErrNetwork, ErrTimeout, ErrServer:
		return true
	}
	return false
}

// ErrorKindOf extracts the kind from any error in a chain, or "" when the
// error did not originate in this package.
func ErrorKindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func validationError(verr *schema.ValidationError) *APIError {
	return &APIError{Kind: ErrValidation, Message: verr.Error(), Err: verr}
}
