package apiclient

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable: no HTTP response was received at all.
	ErrUnavailable = errors.New("server unreachable")
	// ErrUnauthorized is wrapped by every 401/403 APIError.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx answer from the backend. Message is the backend's
// message field, verbatim.
type APIError struct {
	Status  int
	Message string
	Errors  map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
