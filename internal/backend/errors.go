package backend

import (
	"errors"
	"net/http"
	"strings"
)

// Error is the single normalized failure shape for every backend call.
// Status is 0 when no HTTP response was received at all.
type Error struct {
	Status  int
	Message string
	Fields  []string // field-level validation messages, when present
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

const networkErrorMessage = "Network error - please check your connection"

// networkError wraps a transport-level failure (no response reachable).
func networkError() *Error {
	return &Error{Status: 0, Message: networkErrorMessage}
}

// IsNotFound reports whether err is a backend 404: the request resolved
// but named no data. Callers render this as a dedicated empty state,
// distinct from network or server failure.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an authorization failure. The
// client has already purged the stored token by the time this returns true.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusUnauthorized
}

// Message extracts the human-readable message from any error, for display.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
