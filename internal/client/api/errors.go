package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the backend could not be reached at the
	// transport level (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the backend rejected the bearer token or the
	// credentials. The client never retries or refreshes; callers decide
	// whether to drop the session.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a server-signaled business failure: a non-2xx HTTP status or an
// envelope with error=true. Message is the human-readable text from the
// envelope and is safe to show to the user.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
