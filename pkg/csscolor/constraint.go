package csscolor

import "github.com/dmitrymomot/csscolor/pkg/validator"

const (
	// InvalidFormatError is the stable code carried by every violation this package emits.
	InvalidFormatError = "454ab47b-aacf-4059-8f26-184b2dc9d48d"

	// DefaultMessage is used when a constraint does not set its own message.
	DefaultMessage = "This value is not a valid hexadecimal color."

	// DefaultGroup is assigned to constraints created without explicit groups.
	DefaultGroup = "Default"
)

func init() {
	validator.RegisterCodeName(InvalidFormatError, "INVALID_FORMAT_ERROR")
}

// Normalizer transforms a stringified value before it is matched.
type Normalizer interface {
	Normalize(string) string
}

// NormalizerFunc adapts an ordinary function to the Normalizer interface.
type NormalizerFunc func(string) string

func (f NormalizerFunc) Normalize(s string) string { return f(s) }

// Constraint describes one CSS color rule attached to a value.
//
// Mode may be left empty to use the validator's default. It stays an
// exported field and may be changed after construction; the validator checks
// it again on every call.
type Constraint struct {
	Mode       Mode
	Message    string
	Normalizer Normalizer
	Groups     []string
	Payload    any
}

type settings struct {
	mode       *Mode
	message    *string
	normalizer any
	groups     []string
	payload    any
}

// Option configures a Constraint under construction.
type Option func(*settings)

func WithMode(m Mode) Option {
	return func(s *settings) { s.mode = &m }
}

func WithMessage(msg string) Option {
	return func(s *settings) { s.message = &msg }
}

// WithNormalizer accepts a Normalizer, a NormalizerFunc or a func(string) string.
// Any other value makes NewConstraint fail.
func WithNormalizer(n any) Option {
	return func(s *settings) { s.normalizer = n }
}

func WithGroups(groups ...string) Option {
	return func(s *settings) { s.groups = groups }
}

func WithPayload(payload any) Option {
	return func(s *settings) { s.payload = payload }
}

// NewConstraint builds a Constraint. An unknown mode is rejected before
// anything else is looked at; a normalizer that cannot be called is rejected
// with an error naming its type.
func NewConstraint(opts ...Option) (*Constraint, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.mode != nil && !s.mode.Valid() {
		return nil, invalidArgument(`the "mode" parameter value %q is not valid`, string(*s.mode))
	}

	c := &Constraint{
		Message: DefaultMessage,
		Groups:  []string{DefaultGroup},
		Payload: s.payload,
	}
	if s.mode != nil {
		c.Mode = *s.mode
	}
	if s.message != nil {
		c.Message = *s.message
	}
	if len(s.groups) > 0 {
		c.Groups = s.groups
	}

	n, err := toNormalizer(s.normalizer)
	if err != nil {
		return nil, err
	}
	c.Normalizer = n

	return c, nil
}

// MustConstraint is like NewConstraint but panics on error.
// Intended for package-level rule declarations.
func MustConstraint(opts ...Option) *Constraint {
	c, err := NewConstraint(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func toNormalizer(v any) (Normalizer, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case NormalizerFunc:
		if n == nil {
			return nil, nil
		}
		return n, nil
	case Normalizer:
		return n, nil
	case func(string) string:
		if n == nil {
			return nil, nil
		}
		return NormalizerFunc(n), nil
	default:
		return nil, invalidArgument(`the "normalizer" option must be a valid callable (%q given)`, typeName(v))
	}
}
