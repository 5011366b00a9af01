package csscolor

import (
	"fmt"

	"github.com/dmitrymomot/csscolor/pkg/config"
)

// Config is the environment-driven setup for a Validator.
type Config struct {
	DefaultMode Mode   `env:"CSSCOLOR_DEFAULT_MODE" envDefault:"hex_long"`
	RulesFile   string `env:"CSSCOLOR_RULES_FILE"`
}

// LoadConfig reads Config from the environment.
// An unknown CSSCOLOR_DEFAULT_MODE fails here, before any validator exists.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewValidatorFromConfig creates a Validator and, when cfg.RulesFile is set,
// loads its rules.
func NewValidatorFromConfig(cfg Config, opts ...ValidatorOption) (*Validator, RuleSet, error) {
	v, err := NewValidator(cfg.DefaultMode, opts...)
	if err != nil {
		return nil, nil, err
	}

	if cfg.RulesFile == "" {
		return v, RuleSet{}, nil
	}

	rules, err := LoadRulesFile(cfg.RulesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load rules: %w", err)
	}
	return v, rules, nil
}
