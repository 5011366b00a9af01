package validator

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// ValueParameter is the placeholder every constraint message may reference.
const ValueParameter = "{{ value }}"

// Builder assembles a single Violation from a message template.
// Parameters are substituted into the template verbatim when Violation is called.
type Builder struct {
	template   string
	field      string
	code       string
	params     map[string]string
	invalid    any
	hasInvalid bool
}

func NewBuilder(template string) *Builder {
	return &Builder{
		template: template,
		params:   make(map[string]string),
	}
}

func (b *Builder) SetParameter(key, value string) *Builder {
	b.params[key] = value
	return b
}

func (b *Builder) SetParameters(params map[string]string) *Builder {
	maps.Copy(b.params, params)
	return b
}

func (b *Builder) SetCode(code string) *Builder {
	b.code = code
	return b
}

func (b *Builder) SetField(field string) *Builder {
	b.field = field
	return b
}

func (b *Builder) SetInvalidValue(v any) *Builder {
	b.invalid = v
	b.hasInvalid = true
	return b
}

// Violation renders the message and returns the finished record.
func (b *Builder) Violation() Violation {
	v := Violation{
		Field:      b.field,
		Message:    Interpolate(b.template, b.params),
		Template:   b.template,
		Parameters: maps.Clone(b.params),
		Code:       b.code,
	}
	if b.hasInvalid {
		v.InvalidValue = b.invalid
	}
	return v
}

// Interpolate replaces each parameter key found in template with its value.
func Interpolate(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}

	// Longest keys first so a key that prefixes another never wins a tie.
	keys := slices.SortedFunc(maps.Keys(params), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, params[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
