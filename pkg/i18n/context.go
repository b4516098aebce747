package i18n

import "context"

type localeKey struct{}

// WithLocale stores the language code in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// Locale returns the language code stored in ctx, or "".
func Locale(ctx context.Context) string {
	lang, _ := ctx.Value(localeKey{}).(string)
	return lang
}
