package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth is returned for rejected credentials or an expired/missing token.
	ErrAuth = errors.New("authentication failed")
	// ErrValidation is returned when the server rejects submitted data.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the target entity no longer exists.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response decoded from the backend. It wraps one of
// the sentinel category errors above so callers can branch with errors.Is
// while still reaching the server-provided message.
type APIError struct {
	StatusCode int
	Message    string // server-provided, may be empty
	kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.kind }

// NetworkError is a transport-level failure: the backend was unreachable or
// the connection broke before a response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("api: network failure: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// Message returns the server-provided message carried by err when present,
// otherwise the per-action fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func decodeError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode, kind: classify(statusCode)}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}

func classify(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}
