package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/csscolor/pkg/logger"
)

const (
	// Header carries the request ID in both directions.
	Header = "X-Request-ID"

	maxLength = 128
)

type contextKey struct{}

// New returns a fresh random (version 4) request ID.
func New() string {
	return uuid.NewString()
}

// Valid reports whether a client-supplied ID can be reused: 1 to 128
// characters from [A-Za-z0-9_-].
func Valid(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// Middleware reuses a valid incoming X-Request-ID or generates a new one,
// stores it in the request context and echoes it in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = New()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Attr returns the request ID of ctx as a log attribute. It is empty when
// ctx carries no ID, so slog drops it.
func Attr(ctx context.Context) slog.Attr {
	return logger.RequestID(FromContext(ctx))
}
