package context

import "context"

// DefaultLocale is used when the request does not state a preference.
const DefaultLocale = "en"

type localeKey struct{}

// WithLocales stores the caller's preferred locales, most preferred first.
func WithLocales(ctx context.Context, locales []string) context.Context {
	return context.WithValue(ctx, localeKey{}, locales)
}

// GetLocales returns preferred locales from context, falling back to DefaultLocale.
func GetLocales(ctx context.Context) []string {
	if v, ok := ctx.Value(localeKey{}).([]string); ok && len(v) > 0 {
		return v
	}
	return []string{DefaultLocale}
}
