package colorapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
	"github.com/dmitrymomot/csscolor/pkg/httpserver"
	"github.com/dmitrymomot/csscolor/pkg/logger"
	"github.com/dmitrymomot/csscolor/pkg/requestid"
)

// API serves a Validator and its rule set over HTTP.
type API struct {
	validator *csscolor.Validator
	rules     csscolor.RuleSet
	log       *slog.Logger
}

type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func New(v *csscolor.Validator, rules csscolor.RuleSet, opts ...Option) *API {
	if rules == nil {
		rules = csscolor.RuleSet{}
	}
	a := &API{validator: v, rules: rules, log: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router returns the HTTP routes:
//
//	GET  /healthz
//	GET  /v1/modes
//	GET  /v1/rules
//	GET  /v1/rules/{name}
//	POST /v1/validate
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(a.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/modes", a.handle(a.modes))
		r.Get("/rules", a.handle(a.listRules))
		r.Get("/rules/{name}", a.handle(a.getRule))
		r.Post("/validate", a.handle(a.validate))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.respond(w, r, http.StatusNotFound, Response{Error: &ErrorDetail{
			Code:    "not_found",
			Message: http.StatusText(http.StatusNotFound),
		}})
	})

	return r
}

type handlerFunc func(r *http.Request) (any, error)

// handle writes the returned data as 200 or maps the error to a status.
func (a *API) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			status, code := errorStatus(err)
			level := slog.LevelDebug
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			a.log.Log(r.Context(), level, "request failed", logger.Error(err), requestid.Attr(r.Context()))
			a.respond(w, r, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}})
			return
		}
		a.respond(w, r, http.StatusOK, Response{Data: data})
	}
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body Response) {
	if err := writeJSON(w, status, body); err != nil {
		a.log.WarnContext(r.Context(), "write response", logger.Error(err), requestid.Attr(r.Context()))
	}
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			requestid.Attr(r.Context()),
		)
	})
}

type modesResponse struct {
	Default csscolor.Mode   `json:"default"`
	Modes   []csscolor.Mode `json:"modes"`
}

func (a *API) modes(*http.Request) (any, error) {
	return modesResponse{Default: a.validator.DefaultMode(), Modes: csscolor.Modes()}, nil
}

type ruleResponse struct {
	Name    string        `json:"name"`
	Mode    csscolor.Mode `json:"mode,omitempty"`
	Message string        `json:"message"`
	Groups  []string      `json:"groups,omitempty"`
}

func (a *API) listRules(*http.Request) (any, error) {
	out := make([]ruleResponse, 0, len(a.rules))
	for _, name := range a.rules.Names() {
		c, _ := a.rules.Get(name)
		out = append(out, newRuleResponse(name, c))
	}
	return out, nil
}

func (a *API) getRule(r *http.Request) (any, error) {
	name := chi.URLParam(r, "name")
	c, ok := a.rules.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
	}
	return newRuleResponse(name, c), nil
}

func newRuleResponse(name string, c *csscolor.Constraint) ruleResponse {
	return ruleResponse{Name: name, Mode: c.Mode, Message: c.Message, Groups: c.Groups}
}
