package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csscolor/pkg/colorapi"
	"github.com/dmitrymomot/csscolor/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Long: `Serve POST /v1/validate, GET /v1/modes, GET /v1/rules and /healthz.

The server stops gracefully on SIGINT or SIGTERM. Timeouts are read from
CSSCOLOR_HTTP_READ_TIMEOUT, CSSCOLOR_HTTP_WRITE_TIMEOUT,
CSSCOLOR_HTTP_IDLE_TIMEOUT and CSSCOLOR_HTTP_SHUTDOWN_TIMEOUT.`,
		Example: `  csscolor serve --addr :9000 --rules-file colors.yaml
  curl -s localhost:9000/v1/validate -H 'Content-Type: application/json' \
    -d '{"rule": "brand", "values": ["#C0FFEE"]}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides CSSCOLOR_HTTP_ADDR)")

	return cmd
}

func (a *app) runServe(ctx context.Context, addr string) error {
	v, rules, err := a.validator()
	if err != nil {
		return err
	}

	cfg := a.cfg.HTTP
	if addr != "" {
		cfg.Addr = addr
	}

	opts := []httpserver.Option{httpserver.WithLogger(a.log)}
	if a.onListen != nil {
		opts = append(opts, httpserver.WithListenHook(a.onListen))
	}

	api := colorapi.New(v, rules, colorapi.WithLogger(a.log))
	return httpserver.NewFromConfig(cfg, opts...).Run(ctx, api.Router())
}
