package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/csscolor/pkg/logger"
)

// Server runs an http.Server until its context is cancelled and then shuts
// it down gracefully.
type Server struct {
	opts options

	mu  sync.Mutex
	srv *http.Server
}

func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o}
}

// Run listens on the configured address and serves handler until ctx is done.
// A nil handler responds 404 to everything.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	addr := ln.Addr().String()
	s.opts.logger.Info("http server listening", logger.Addr(addr))
	for _, fn := range s.opts.onListen {
		fn(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		if err := s.shutdown(); err != nil {
			<-errCh
			return err
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	s.opts.logger.Info("http server stopped", logger.Addr(addr))
	return nil
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.opts.logger.Error("http server shutdown", logger.Error(err))
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
