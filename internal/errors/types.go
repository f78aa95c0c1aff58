// Package errors defines the typed error taxonomy shared by every client
// operation. Callers match on the concrete types with errors.As.
package errors

import "fmt"

// AuthenticationError is returned when no API key can be resolved at
// construction time, or when the server answers 401/403.
type AuthenticationError struct {
	StatusCode int    // 0 when raised at construction
	Msg        string // human-readable cause
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("wsap: authentication failed (HTTP %d): %s", e.StatusCode, e.Msg)
	}
	return fmt.Sprintf("wsap: authentication failed: %s", e.Msg)
}

// NotFoundError is returned for a 404 response.
type NotFoundError struct {
	Body string
}

func (e *NotFoundError) Error() string {
	return "wsap: resource not found (HTTP 404)"
}

// ParseError is returned when a 2xx response carries a non-empty body that is
// not valid JSON.
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wsap: invalid JSON in response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError covers every remaining failure: any non-2xx status not mapped to a
// more specific type, and transport-level failures where no response was
// received at all. StatusCode is 0 in the no-response case, so callers can
// always tell the two apart.
type APIError struct {
	StatusCode int
	Body       string
	Err        error // underlying transport error, nil for status failures
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("wsap: request failed with no response: %v", e.Err)
	}
	return fmt.Sprintf("wsap: API error (HTTP %d): %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }
