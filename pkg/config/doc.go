// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory is optional).
//   - Load parses the environment into any struct using `env` field tags.
//   - MustLoadEnv and MustLoad panic on failure for start-up code where a
//     broken configuration should stop the process.
//
// # Usage
//
//	type Config struct {
//	    DefaultMode string `env:"CSSCOLOR_DEFAULT_MODE" envDefault:"hex_long"`
//	    RulesFile   string `env:"CSSCOLOR_RULES_FILE"`
//	}
//
//	config.MustLoadEnv()
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Tests can bypass the process environment with WithEnvironment.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
