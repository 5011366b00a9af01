package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/csscolor/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// HealthCheckHandler serves liveness when no checks are given ("ALIVE") and
// readiness otherwise: "READY" when every check passes, 503 "NOT_READY" on the
// first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		_, _ = w.Write([]byte("READY"))
	}
}
