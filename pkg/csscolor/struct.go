package csscolor

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/csscolor/pkg/logger"
	"github.com/dmitrymomot/csscolor/pkg/validator"
)

// ValidateStruct validates every exported field tagged with `csscolor:"..."`.
// Nested structs and pointers to structs without a tag are walked recursively.
// Fields of untagged embedded structs are reported under the outer path, as
// Go promotes them.
//
// Rejected values are returned together as validator.Violations with Field
// set to the dotted field path. Malformed tags and unsupported field types
// are returned as plain errors instead, since they are programming mistakes.
func (v *Validator) ValidateStruct(s any) error {
	rv := reflect.ValueOf(s)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return invalidArgument("ValidateStruct requires a non-nil struct")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return invalidArgument("ValidateStruct requires a struct, %q given", typeName(s))
	}

	var vs validator.Violations
	if err := v.walk(rv, "", &vs); err != nil {
		return err
	}
	return vs.Err()
}

func (v *Validator) walk(rv reflect.Value, prefix string, vs *validator.Violations) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		sf := rt.Field(i)
		tag, tagged := sf.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}

		field := rv.Field(i)

		// Untagged embedded structs are flattened: their fields are promoted,
		// so they keep the outer path even when the embedded type is unexported.
		if sf.Anonymous && !tagged {
			if nested, ok := structValue(field); ok {
				if err := v.walk(nested, prefix, vs); err != nil {
					return err
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		path := sf.Name
		if prefix != "" {
			path = prefix + "." + sf.Name
		}

		if !tagged {
			if nested, ok := structValue(field); ok {
				if err := v.walk(nested, path, vs); err != nil {
					return err
				}
			}
			continue
		}

		c, err := ParseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", path, err)
		}

		res, err := v.Validate(field.Interface(), c)
		if err != nil {
			return fmt.Errorf("field %s: %w", path, err)
		}
		if !res.Valid() {
			viol := *res.Violation
			viol.Field = path
			v.logger.Debug("csscolor: field rejected", logger.Field(path), logger.Code(viol.Code))
			vs.Add(viol)
		}
	}

	return nil
}

// structValue unwraps non-nil pointers and reports whether a struct remains.
func structValue(field reflect.Value) (reflect.Value, bool) {
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return reflect.Value{}, false
		}
		field = field.Elem()
	}
	return field, field.Kind() == reflect.Struct
}
