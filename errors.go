package victorops

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure modes.
var (
	ErrNoCredentials = errors.New("victorops: no credentials configured")
	ErrNoBaseURL     = errors.New("victorops: no base URL configured")
)

// URLError indicates the configured base URL could not be parsed as an
// absolute URL.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("victorops: invalid base URL %q: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// TransportError indicates the HTTP request could not be completed, for
// example due to a network failure or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("victorops: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SerializationError indicates JSON encoding or decoding failed.
// Op is either "marshal" or "unmarshal".
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("victorops: %s failed: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// APIError represents a general VictorOps API error response.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("victorops: API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("victorops: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("victorops: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("victorops: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates invalid request data, either rejected locally
// before any network call or by the API (400).
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("victorops: validation error: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("victorops: server error %d: %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// invalidInput builds the error returned for locally rejected arguments.
func invalidInput(message string) *ValidationError {
	return &ValidationError{APIError: APIError{Message: message}}
}

// parseError converts a non-success HTTP response into the appropriate
// error type.
func parseError(statusCode int, body []byte) error {
	base := APIError{
		StatusCode: statusCode,
	}

	// Try to parse structured JSON error response
	if err := json.Unmarshal(body, &base); err != nil || base.Message == "" {
		// Fallback to raw body if not valid JSON
		base.StatusCode = statusCode
		base.Message = string(body)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}
