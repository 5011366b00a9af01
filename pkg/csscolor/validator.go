package csscolor

import (
	"log/slog"

	"github.com/dmitrymomot/csscolor/pkg/logger"
	"github.com/dmitrymomot/csscolor/pkg/validator"
)

// Validator checks values against CSS color constraints.
// It holds only its default mode and a logger, so one instance can be shared
// by any number of goroutines.
type Validator struct {
	defaultMode Mode
	logger      *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithLogger makes the validator log rejected values and propagated errors at debug level.
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewValidator creates a Validator whose constraints fall back to defaultMode.
func NewValidator(defaultMode Mode, opts ...ValidatorOption) (*Validator, error) {
	if !defaultMode.Valid() {
		return nil, invalidArgument(`the "defaultMode" parameter value %q is not valid`, string(defaultMode))
	}

	v := &Validator{
		defaultMode: defaultMode,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// MustValidator is like NewValidator but panics on error.
func MustValidator(defaultMode Mode, opts ...ValidatorOption) *Validator {
	v, err := NewValidator(defaultMode, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) DefaultMode() Mode { return v.defaultMode }

// Result is the outcome of a single Validate call.
// Mode is the mode the value was matched against; it stays empty when the
// value was absent or empty and no matching took place.
type Result struct {
	Mode      Mode
	Violation *validator.Violation
}

// Valid reports whether the value passed.
func (r Result) Valid() bool { return r.Violation == nil }

// Resolve returns the mode c is checked against without modifying c.
func (v *Validator) Resolve(c *Constraint) (Mode, error) {
	if c == nil {
		return "", invalidArgument("constraint must not be nil")
	}

	mode := c.Mode
	if mode == "" {
		mode = v.defaultMode
	}
	if !mode.Valid() {
		return "", invalidArgument(`the "%T.Mode" parameter value %q is not valid`, c, string(mode))
	}
	return mode, nil
}

// Bind resolves the mode of c and stores it on c.
// Call it once while wiring rules, before c is shared between goroutines.
func (v *Validator) Bind(c *Constraint) error {
	mode, err := v.Resolve(c)
	if err != nil {
		return err
	}
	c.Mode = mode
	return nil
}

// Validate checks value against c.
//
// Absent and empty values always pass. A mismatch is reported through
// Result.Violation; errors are reserved for misuse: a value that cannot be
// read as text (ErrUnexpectedType) or a constraint with an unknown mode
// (ErrInvalidArgument).
func (v *Validator) Validate(value any, c *Constraint) (Result, error) {
	if c == nil {
		return Result{}, invalidArgument("constraint must not be nil")
	}

	raw, ok, err := stringify(value)
	if err != nil {
		v.logger.Debug("csscolor: unsupported value", logger.Error(err))
		return Result{}, err
	}
	if !ok {
		return Result{}, nil
	}

	subject := raw
	if c.Normalizer != nil {
		subject = c.Normalizer.Normalize(raw)
	}

	mode, err := v.Resolve(c)
	if err != nil {
		v.logger.Debug("csscolor: unresolvable mode", logger.Error(err))
		return Result{}, err
	}

	if mode.Match(subject) {
		return Result{Mode: mode}, nil
	}

	viol := validator.NewBuilder(c.Message).
		SetParameter(validator.ValueParameter, validator.FormatValue(raw)).
		SetCode(InvalidFormatError).
		SetInvalidValue(value).
		Violation()

	v.logger.Debug("csscolor: value rejected",
		logger.Mode(string(mode)),
		logger.Value(raw),
		logger.Code(InvalidFormatError),
	)

	return Result{Mode: mode, Violation: &viol}, nil
}
