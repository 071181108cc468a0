package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for API operations.
var (
	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = errors.New("api: request failed")

	// ErrInvalidResponse indicates a 2xx response whose body could not be used.
	ErrInvalidResponse = errors.New("api: invalid response")
)

// StatusError is a non-2xx response. Message is taken from the response
// body's "message" (or "error") field and is empty when neither is present.
type StatusError struct {
	Op      string
	Status  int
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: status %d", e.Op, e.Status)
}

// IsClientError reports whether the server rejected the request itself.
func (e *StatusError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// UserMessage maps err to the text shown in the form banner. Server
// messages are shown verbatim, transport failures get a generic network
// notice, and everything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if errors.Is(err, ErrTransport) {
		return "Network error, please try again."
	}
	return fallback
}
