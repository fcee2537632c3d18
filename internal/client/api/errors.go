package api

import (
	"fmt"
	"net/http"
)

// AuthError reports a rejected login, registration or identity lookup.
// The message is surfaced to the user verbatim when the backend provided
// one. A failed identity lookup additionally signals that the stored
// credential must be discarded (handled by the session resolver, not here).
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("authentication failed (HTTP %d)", e.Status)
}

// PermissionError reports that the current role is insufficient for the
// requested action.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "permission denied"
}

// RequestError reports any other non-2xx response on a data operation.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
}
