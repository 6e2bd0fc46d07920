package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrAPIKeyRequired is returned by New when no API key is configured.
var ErrAPIKeyRequired = errors.New("API key required: set SKYWAY_API_KEY or use WithAPIKey")

// StatusTransport is the sentinel status code carried by an APIError
// when the request failed before any HTTP response was received
// (connection refused, timeout, ...).
const StatusTransport = -1

// APIError represents a failed gateway call: either a non-2xx HTTP
// response or a transport-level failure with StatusCode set to
// StatusTransport. Message, Type and Code are populated when the
// response body parses as the gateway's standard error envelope
// {"error":{"message","type","code"}}; otherwise they stay empty and
// Body holds the raw payload.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	Type       string
	Code       string

	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode == StatusTransport {
		return fmt.Sprintf("gateway request failed: %v", e.cause)
	}
	if e.Type != "" {
		return fmt.Sprintf("gateway API error (status %d, type %s): %s", e.StatusCode, e.Type, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("gateway API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway API error (status %d): %s", e.StatusCode, e.Body)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Transport reports whether the error occurred before any HTTP response
// was received.
func (e *APIError) Transport() bool {
	return e.StatusCode == StatusTransport
}

// errorEnvelope is the gateway's standard error body.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// parseAPIError builds an APIError from a non-2xx response. A body that
// is not the standard envelope (non-JSON, or no "error" key) leaves the
// extracted fields unset rather than failing a second time.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
	}

	return apiErr
}

// transportError wraps a pre-response failure with the sentinel status.
func transportError(err error) *APIError {
	return &APIError{
		StatusCode: StatusTransport,
		cause:      err,
	}
}
