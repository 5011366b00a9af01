package sanitizer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName        = errors.New("sanitizer: transform name must not be empty")
	ErrNilTransform     = errors.New("sanitizer: transform must not be nil")
	ErrUnknownTransform = errors.New("sanitizer: unknown transform")
)

// UnknownTransformError names the transform that could not be resolved.
type UnknownTransformError struct {
	Name string
}

func (e *UnknownTransformError) Error() string {
	return fmt.Sprintf("sanitizer: unknown transform %q", e.Name)
}

func (e *UnknownTransformError) Unwrap() error { return ErrUnknownTransform }
