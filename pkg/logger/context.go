package logger

import (
	"context"
	"log/slog"
)

type formNameKey struct{}

// WithFormName stores the name of the form being processed in ctx.
func WithFormName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, formNameKey{}, name)
}

// FormName returns the form name stored by WithFormName.
func FormName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(formNameKey{}).(string)
	return name, ok && name != ""
}

// FormNameExtractor injects the "form" attribute for records logged with a
// context carrying a form name.
func FormNameExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if name, ok := FormName(ctx); ok {
			return slog.String("form", name), true
		}
		return slog.Attr{}, false
	}
}
