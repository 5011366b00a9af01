package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how environment variables are parsed.
type Option func(*env.Options)

// WithPrefix only reads variables starting with prefix; struct tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Load parses environment variables into the provided configuration struct
// based on its `env` and `envDefault` field tags.
//
// Example:
//
//	type Config struct {
//		DefaultMode string `env:"CSSCOLOR_DEFAULT_MODE" envDefault:"hex_long"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads variables from .env files into the process environment.
// Without arguments it reads ./.env and silently skips it when missing.
// Explicit paths must exist; later paths override earlier ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
