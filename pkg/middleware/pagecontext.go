package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/intl"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// requestURL returns the absolute URL of r. Proxies are trusted for the
// scheme through X-Forwarded-Proto.
func requestURL(r *http.Request) *url.URL {
	u := *r.URL
	u.Host = r.Host
	switch {
	case r.TLS != nil:
		u.Scheme = "https"
	case r.Header.Get("X-Forwarded-Proto") != "":
		u.Scheme = strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0]))
	default:
		u.Scheme = "http"
	}
	return &u
}

func WithPageContext(endpoints routing.Endpoints) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, found := intl.UseLocalizer(r.Context())
				if !found {
					panic(intl.ErrNoLocalizer)
				}
				locale, ok := intl.UseLocale(r.Context())
				if !ok {
					panic("locale not found")
				}
				pageCtx := &types.PageContext{
					URL:       requestURL(r),
					Localizer: localizer,
					Locale:    locale,
					Endpoints: endpoints,
				}
				pageCtx.SetAuthzState(composables.UseAuthzViewState(r.Context()))
				next.ServeHTTP(w, r.WithContext(composables.WithPageCtx(r.Context(), pageCtx)))
			},
		)
	}
}
