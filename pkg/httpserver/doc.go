// Package httpserver runs an http.Handler with configurable timeouts and a
// graceful shutdown that starts when the run context is cancelled.
//
// Signal handling is left to the caller, typically through
// signal.NotifyContext:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen and serve failures are joined with ErrStart, shutdown failures with
// ErrShutdown. HealthCheckHandler serves liveness and readiness probes.
package httpserver
