package imageutil

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyImage is returned when the input byte slice is nil or
	// empty.
	ErrEmptyImage = errors.New("image bytes must not be empty")

	// ErrInvalidSize is returned when a non-positive max size is
	// requested.
	ErrInvalidSize = errors.New("max size must be positive")
)

// DimensionError is returned when an image header declares dimensions
// beyond MaxDimension. It is detected before any pixel data is decoded
// and is distinct from a decode failure.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("image dimensions %dx%d exceed maximum %dx%d",
		e.Width, e.Height, MaxDimension, MaxDimension)
}

// DecodeError is returned when the input bytes cannot be interpreted as
// a supported image format.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported or corrupt image format: %v", e.Cause)
	}
	return "unsupported or corrupt image format"
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
