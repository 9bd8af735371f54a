package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("gateway unavailable")

	// ErrUnauthorized matches 401/403 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// HTTPError is a non-2xx gateway response. Message is extracted from the
// response body when the body carries one, otherwise synthesized from the
// status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets callers match authorization failures with
// errors.Is(err, ErrUnauthorized) without inspecting status codes.
func (e *HTTPError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// newHTTPError builds an HTTPError from a status code and a best-effort
// message. An empty message falls back to the status text.
func newHTTPError(statusCode int, message string) *HTTPError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d %s", statusCode, http.StatusText(statusCode))
	}
	return &HTTPError{StatusCode: statusCode, Message: message}
}
