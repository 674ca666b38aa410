package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never produced an HTTP response
	// (DNS, connect, TLS, timeout). Callers may fall back to cached data.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers 401/403 responses; the session is stale or
	// missing and the user has to sign in again.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotConfigured is returned before any request is attempted when
	// the API base URL is missing from the configuration.
	ErrNotConfigured = errors.New("api base url is not configured")

	// ErrMalformedResponse means the server answered 2xx but the body did
	// not decode into the expected shape.
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrNoFoodDetected means the analysis ran but recognized nothing.
	ErrNoFoodDetected = errors.New("no food detected in the image")
)

// StatusError is a non-2xx HTTP response, carrying the status code and
// response body as diagnostic text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match auth failures.
func (e *StatusError) Unwrap() error {
	if e.Code == 401 || e.Code == 403 {
		return ErrUnauthorized
	}
	return nil
}
