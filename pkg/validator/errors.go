package validator

import "errors"

var (
	// ErrValidationFailed is wrapped by every Violations error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownCode is returned by CodeName for codes nobody registered.
	ErrUnknownCode = errors.New("unknown violation code")
)
