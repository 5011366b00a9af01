package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Violation represents a single failed constraint on a single value.
type Violation struct {
	Field        string
	Message      string
	Template     string
	Parameters   map[string]string
	Code         string
	InvalidValue any
}

// Error implements the error interface so a lone violation can travel as an error.
func (v Violation) Error() string {
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Violations represents a collection of violations.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Error())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match any collection.
func (vs Violations) Unwrap() error { return ErrValidationFailed }

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field, in insertion order.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// ByCode returns the violations carrying the given code.
func (vs Violations) ByCode(code string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

// Codes returns the distinct codes present in the collection.
func (vs Violations) Codes() []string {
	var codes []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Code] {
			codes = append(codes, v.Code)
			seen[v.Code] = true
		}
	}
	return codes
}

func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Err returns the collection as an error, or nil when it is empty.
func (vs Violations) Err() error {
	if vs.IsEmpty() {
		return nil
	}
	return vs
}

// ExtractViolations extracts Violations from an error chain.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	var v Violation
	if errors.As(err, &v) {
		return Violations{v}
	}

	return nil
}

func IsViolations(err error) bool {
	return ExtractViolations(err) != nil
}
