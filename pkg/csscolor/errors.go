package csscolor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks configuration mistakes: unknown modes, bad
	// normalizers, malformed tags or rule files. It is never a validation result.
	ErrInvalidArgument = errors.New("csscolor: invalid argument")

	// ErrUnexpectedType is returned when a value cannot be treated as text.
	ErrUnexpectedType = errors.New("csscolor: unexpected type")
)

// UnexpectedTypeError reports a value whose type cannot be converted to a string.
type UnexpectedTypeError struct {
	Expected string
	Given    string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("csscolor: expected argument of type %q, %q given", e.Expected, e.Given)
}

func (e *UnexpectedTypeError) Unwrap() error { return ErrUnexpectedType }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
