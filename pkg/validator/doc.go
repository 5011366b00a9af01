// Package validator defines the violation records that constraint validators
// emit and the collection type used to aggregate them.
//
// A constraint validator that decides a value is invalid builds exactly one
// Violation with a Builder:
//
//	v := validator.NewBuilder("This value is not valid.").
//	    SetParameter(validator.ValueParameter, validator.FormatValue(raw)).
//	    SetCode(code).
//	    Violation()
//
// Several violations are gathered in a Violations slice, which implements the
// error interface so a whole batch can be returned from a single call:
//
//	var vs validator.Violations
//	vs.Add(v)
//	if err := vs.Err(); err != nil {
//	    for _, field := range validator.ExtractViolations(err).Fields() {
//	        // ...
//	    }
//	}
//
// Violations are business results. Misconfiguration (unknown options, bad
// input types) is reported by the constraint packages as ordinary errors and
// never ends up in this collection.
//
// Codes are stable machine-readable identifiers; RegisterCodeName and
// CodeName map them to readable names such as INVALID_FORMAT_ERROR.
package validator
