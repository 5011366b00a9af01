package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Mode records the validation mode under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Code records a violation code under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Field records a field path under the key "field".
// If field is empty, it returns an empty Attr.
func Field(field string) slog.Attr {
	if field == "" {
		return slog.Attr{}
	}
	return slog.String("field", field)
}

// Value records the validated value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Addr records a network address under the key "addr".
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}

// RequestID records a request correlation ID under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
