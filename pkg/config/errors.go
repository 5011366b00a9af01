package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config: parse environment")
	ErrLoadingEnvFile = errors.New("config: load env file")
	// ErrNilPointer is returned by Load for a nil destination.
	ErrNilPointer = errors.New("config: nil destination")
)
