package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csscolor/pkg/config"
	"github.com/dmitrymomot/csscolor/pkg/csscolor"
	"github.com/dmitrymomot/csscolor/pkg/httpserver"
	"github.com/dmitrymomot/csscolor/pkg/logger"
)

// errInvalidValues signals that at least one value was rejected.
var errInvalidValues = errors.New("one or more values are not valid CSS colors")

type cliConfig struct {
	csscolor.Config
	LogLevel  string `env:"CSSCOLOR_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CSSCOLOR_LOG_FORMAT" envDefault:"text"`
	Env       string `env:"CSSCOLOR_ENV" envDefault:"development"`
	HTTP      httpserver.Config
}

type app struct {
	cfg      cliConfig
	log      *slog.Logger
	envFiles []string
	envVars  map[string]string
	onListen func(addr string)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csscolor",
		Short: titleStyle.Render("csscolor") + " validates CSS color values",
		Long: `csscolor checks values against one of three CSS color syntaxes:
long hex (#RRGGBB[AA]), short hex (#RGB[A]) or the eight base color names.

Configuration is read from the environment and optional .env files:
  CSSCOLOR_DEFAULT_MODE  mode used when no --mode or rule is given (hex_long)
  CSSCOLOR_RULES_FILE    YAML file with named rules
  CSSCOLOR_LOG_LEVEL     debug, info, warn or error (warn)
  CSSCOLOR_LOG_FORMAT    text or json (text)
  CSSCOLOR_ENV           development, staging or production
  CSSCOLOR_HTTP_ADDR     listen address of 'csscolor serve' (:8080)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load variables from these .env files (default: ./.env if present)")
	rootCmd.PersistentFlags().String("rules-file", "", "YAML rules file (overrides CSSCOLOR_RULES_FILE)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newNormalizersCmd())
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	var opts []config.Option
	if a.envVars != nil {
		opts = append(opts, config.WithEnvironment(a.envVars))
	} else if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}

	if err := config.Load(&a.cfg, opts...); err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("rules-file"); f != nil && f.Changed {
		a.cfg.RulesFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		a.cfg.LogLevel = f.Value.String()
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "csscolor"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	a.log.Debug("configuration loaded",
		logger.Mode(a.cfg.DefaultMode.String()),
		slog.String("rules_file", a.cfg.RulesFile),
	)
	return nil
}

// validator builds the validator and rule set described by the configuration.
func (a *app) validator() (*csscolor.Validator, csscolor.RuleSet, error) {
	v, rules, err := csscolor.NewValidatorFromConfig(a.cfg.Config, csscolor.WithLogger(a.log))
	if err != nil {
		return nil, nil, fmt.Errorf("csscolor setup: %w", err)
	}
	return v, rules, nil
}

// stdoutIsTerminal reports whether human-readable output makes sense.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
