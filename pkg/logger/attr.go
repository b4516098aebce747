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

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Constraint records a validation constraint name under the key "constraint".
func Constraint(name string) slog.Attr {
	return slog.String("constraint", name)
}

// Hook records the failing hook name under the key "hook".
func Hook(name string) slog.Attr {
	return slog.String("hook", name)
}

// Version records an async request version under the key "version".
func Version(v uint64) slog.Attr {
	return slog.Uint64("version", v)
}

// Query records a search query under the key "query".
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Panic records a recovered panic value under the key "panic".
func Panic(v any) slog.Attr {
	return slog.Any("panic", v)
}
