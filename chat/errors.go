package chat

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrModelRequired is returned by Builder.Build when no model is set.
	ErrModelRequired = errors.New("model is required: use Builder.Model")

	// ErrNoMessages is returned by Builder.Build when the request has no
	// messages.
	ErrNoMessages = errors.New("at least one message is required: use Builder.AddMessage")

	// ErrMissingContentType is returned when a content part object has no
	// "type" discriminator field.
	ErrMissingContentType = errors.New(`content part missing required "type" discriminator field`)

	// ErrContentShape is returned when a message content field is neither
	// a string, null, nor an array of content parts.
	ErrContentShape = errors.New("message content must be a string, null, or an array of content parts")
)

// UnknownContentTypeError is returned when a content part carries a
// discriminator value outside the known set.
type UnknownContentTypeError struct {
	Type string
}

func (e *UnknownContentTypeError) Error() string {
	return fmt.Sprintf("unknown content part type: %q", e.Type)
}
