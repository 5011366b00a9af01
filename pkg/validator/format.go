package validator

import (
	"fmt"
	"reflect"
	"strconv"
)

// FormatValue renders a rejected value for use as a message parameter.
// Strings are wrapped in double quotes without escaping.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return `"` + x + `"`
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return `"` + x.String() + `"`
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return `"` + rv.String() + `"`
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	}
	return fmt.Sprintf("%v", v)
}
