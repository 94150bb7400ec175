package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/pkg/constants"
)

var ErrNoLocalizer = errors.New("localizer not found")

// WithLocalizer returns a new context with the localizer.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, l)
}

// UseLocalizer returns the localizer from the context.
// If the localizer is not found, the second return value will be false.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	if !ok || l == nil {
		return nil, false
	}
	return l, true
}

// WithLocale returns a new context with the locale.
func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, constants.LocaleKey, locale)
}

// UseLocale returns the locale from the context.
func UseLocale(ctx context.Context) (language.Tag, bool) {
	locale, ok := ctx.Value(constants.LocaleKey).(language.Tag)
	return locale, ok
}

// MustT translates a message ID using the localizer stored in the context.
func MustT(ctx context.Context, msgID string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	return l.MustLocalize(&i18n.LocalizeConfig{MessageID: msgID})
}
