package csscolor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleSet maps rule names to constraints loaded from a rule file.
type RuleSet map[string]*Constraint

// Get returns the constraint registered under name.
func (rs RuleSet) Get(name string) (*Constraint, bool) {
	c, ok := rs[name]
	return c, ok
}

// Names returns the rule names in sorted order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Overrides adjusts a selected rule. Empty fields keep the rule's value.
type Overrides struct {
	Mode        string
	Message     string
	Normalizers []string
}

// Select returns the constraint for rule name with o applied on top.
// An empty name starts from a default constraint. The stored rule is never
// modified; a copy is returned.
func (rs RuleSet) Select(name string, o Overrides) (*Constraint, error) {
	override, err := ruleSpec{Mode: o.Mode, Message: o.Message, Normalizers: o.Normalizers}.constraint()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return override, nil
	}

	c, ok := rs.Get(name)
	if !ok {
		return nil, invalidArgument("unknown rule %q (known: %s)", name, strings.Join(rs.Names(), ", "))
	}

	selected := *c
	if o.Mode != "" {
		selected.Mode = override.Mode
	}
	if o.Message != "" {
		selected.Message = override.Message
	}
	if override.Normalizer != nil {
		selected.Normalizer = override.Normalizer
	}
	return &selected, nil
}

type ruleFile struct {
	Rules map[string]ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Mode        string   `yaml:"mode"`
	Message     string   `yaml:"message"`
	Normalizers []string `yaml:"normalizers"`
	Groups      []string `yaml:"groups"`
}

// LoadRules decodes a YAML rule file:
//
//	rules:
//	  brand:
//	    mode: hex_long
//	    normalizers: [trim, lower]
//	  accent:
//	    mode: named_colors
//	    message: "{{ value }} is not a base color."
//
// Unknown keys, unknown modes and unknown normalizer names fail with
// ErrInvalidArgument. An empty document yields an empty RuleSet.
func LoadRules(r io.Reader) (RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f ruleFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSet{}, nil
		}
		return nil, fmt.Errorf("%w: decode rules: %w", ErrInvalidArgument, err)
	}

	rs := make(RuleSet, len(f.Rules))
	for name, raw := range f.Rules {
		c, err := raw.constraint()
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		rs[name] = c
	}
	return rs, nil
}

// LoadRulesFile opens path and decodes it with LoadRules.
func LoadRulesFile(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	return LoadRules(f)
}

func (s ruleSpec) constraint() (*Constraint, error) {
	var opts []Option
	if s.Mode != "" {
		opts = append(opts, WithMode(Mode(s.Mode)))
	}
	if s.Message != "" {
		opts = append(opts, WithMessage(s.Message))
	}
	if len(s.Groups) > 0 {
		opts = append(opts, WithGroups(s.Groups...))
	}

	n, err := normalizerChain(s.Normalizers)
	if err != nil {
		return nil, err
	}
	if n != nil {
		opts = append(opts, WithNormalizer(n))
	}

	return NewConstraint(opts...)
}
