package csscolor

import (
	"fmt"
	"reflect"
	"strconv"
)

// stringify converts an accepted input to text. ok is false for absent
// values (nil, nil pointers) and for values that render as an empty string.
func stringify(value any) (s string, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, v != "", nil
	case bool:
		return strconv.FormatBool(v), true, nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false, nil
		}
		if st, isStringer := rv.Interface().(fmt.Stringer); isStringer {
			return nonEmpty(st.String())
		}
		rv = rv.Elem()
	}

	if rv.CanInterface() {
		if st, isStringer := rv.Interface().(fmt.Stringer); isStringer {
			return nonEmpty(st.String())
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return nonEmpty(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	}

	return "", false, &UnexpectedTypeError{Expected: "string", Given: typeName(value)}
}

func nonEmpty(s string) (string, bool, error) {
	return s, s != "", nil
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
