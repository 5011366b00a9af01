// Package csscolor validates that a value is a CSS color written in one of
// three syntaxes: long hex (#RRGGBB or #RRGGBBAA), short hex (#RGB or #RGBA)
// or one of the eight base color names.
//
// A Constraint describes one rule: its Mode, the message used when a value is
// rejected and an optional Normalizer applied before matching. A Validator
// holds the mode used by constraints that leave Mode empty and checks values
// against constraints:
//
//	v, err := csscolor.NewValidator(csscolor.HexLong)
//	if err != nil {
//	    return err
//	}
//
//	rule := csscolor.MustConstraint(
//	    csscolor.WithMode(csscolor.HexShort),
//	    csscolor.WithNormalizer(strings.TrimSpace),
//	)
//
//	res, err := v.Validate(" #fab ", rule)
//	switch {
//	case err != nil:
//	    // misuse: unsupported value type or unknown mode
//	case !res.Valid():
//	    // res.Violation carries the message, parameters and InvalidFormatError
//	}
//
// # Results and errors
//
// Validate separates two outcomes. A value that does not match is a
// validation result and comes back as Result.Violation. Anything that points
// at a programming or configuration mistake is returned as an error wrapping
// ErrInvalidArgument or ErrUnexpectedType. Absent values (nil, nil pointers)
// and empty strings always pass; requiring a value is a different rule.
//
// Values may be strings, booleans, numbers, types whose underlying kind is
// one of those, or anything implementing fmt.Stringer. Non-nil pointers to
// such values are followed.
//
// # Named colors
//
// NamedColors accepts any string that starts with black, red, green, yellow,
// blue, magenta, cyan or white, case-insensitively. "redwood" therefore
// passes. Hex modes match the whole string.
//
// # Mode resolution
//
// Validate never writes to the constraint, so a single Constraint may be
// shared between goroutines. The mode actually used is reported in
// Result.Mode; Bind stores the resolved mode on a constraint up front.
//
// # Declarative rules
//
// Constraints can also be built from struct tags and YAML files:
//
//	type Theme struct {
//	    Primary string `csscolor:"mode=hex_long;normalizer=trim"`
//	    Accent  string `csscolor:"mode=named_colors"`
//	}
//
//	err := v.ValidateStruct(&theme) // validator.Violations on mismatch
//
//	rules, err := csscolor.LoadRulesFile("colors.yaml")
//
// Normalizers are referenced by the names registered in the sanitizer
// package. Both sources reject unknown modes and names with
// ErrInvalidArgument, exactly like NewConstraint.
package csscolor
