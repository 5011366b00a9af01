package colorapi

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrRuleNotFound         = errors.New("rule not found")
)
