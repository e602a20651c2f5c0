package gateway

import (
	"errors"
	"fmt"
)

// Errors returned by the gateway package. Every operation maps its failure
// into exactly one of these at the boundary, so the views only have to
// translate, never inspect status codes.
var (
	// ErrTransport is returned when no usable response arrived.
	ErrTransport = errors.New("gateway: transport failure")
	// ErrUnauthenticated is returned on rejected credentials, a missing
	// anti-forgery token, or a 401/403 from the backend.
	ErrUnauthenticated = errors.New("gateway: not authenticated")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("gateway: not found")
	// ErrConflict is returned when the resource already exists.
	ErrConflict = errors.New("gateway: already exists")
)

// StatusError reports a response status no taxonomy entry covers.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway: %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}
