package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver: start")
	ErrShutdown       = errors.New("httpserver: graceful shutdown")
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
