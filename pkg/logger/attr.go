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

// ValidationID records the validation run identifier under the key "validation_id".
// If id is nil, it returns an empty Attr.
func ValidationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("validation_id", id)
}

// ObjectName records the validated object's name under the key "object".
func ObjectName(name string) slog.Attr {
	return slog.String("object", name)
}

// Profile records the validation profile under the key "profile".
func Profile(p string) slog.Attr {
	return slog.String("profile", p)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Code records a message code under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// ErrorCount records the number of recorded violations under the key "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
