package types

import (
	"net/url"
	"strings"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/routing"
)

// PageContextProvider exposes everything a page needs to know about the
// current request: localization, authorization view state and the request
// URL used by menu visibility and active-route checks.
//
// Projects can embed a PageContextProvider in their own type to add fields
// or override single methods (e.g. tenant specific translations).
type PageContextProvider interface {
	// T translates a message ID to the current locale with optional template data.
	// If a prefix was set via Namespace(), it will be prepended to the message ID.
	T(key string, args ...map[string]interface{}) string

	// TSafe is like T but returns an empty string on error instead of panicking.
	TSafe(key string, args ...map[string]interface{}) string

	// Namespace returns a new PageContextProvider with the specified prefix.
	Namespace(prefix string) PageContextProvider

	// ToJSLocale converts the page locale to a JavaScript-compatible locale string.
	ToJSLocale() string

	GetLocale() language.Tag
	GetURL() *url.URL
	GetLocalizer() *i18n.Localizer

	// Host returns the request host without port.
	Host() string

	// Path returns the request path, "/" for the root.
	Path() string

	// FullURL returns scheme, host and path of the request without query
	// string and trailing slash.
	FullURL() string

	// URLIs reports whether the current URL matches any of the patterns.
	// '*' matches any run of characters. Patterns starting with '/' are
	// matched against Path, all others against FullURL.
	URLIs(patterns ...string) bool

	// HomeURL returns the URL of the panel home endpoint.
	HomeURL() string

	AuthzState() *authz.ViewState
	SetAuthzState(state *authz.ViewState)

	// CanAuthz reports whether the authz view state allows the given object/action capability.
	CanAuthz(object, action string) bool
}

// PageContext is the default PageContextProvider.
type PageContext struct {
	Locale     language.Tag
	URL        *url.URL
	Localizer  *i18n.Localizer
	Endpoints  routing.Endpoints
	prefix     string
	authzState *authz.ViewState
}

var _ PageContextProvider = (*PageContext)(nil)

func (p *PageContext) messageID(k string) string {
	if p.prefix != "" {
		return p.prefix + "." + k
	}
	return k
}

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	cfg := &i18n.LocalizeConfig{MessageID: p.messageID(k)}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}
	return p.Localizer.MustLocalize(cfg)
}

func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}
	if p.Localizer == nil {
		return ""
	}

	cfg := &i18n.LocalizeConfig{MessageID: p.messageID(k)}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}

	result, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}
	return result
}

func (p *PageContext) Namespace(prefix string) PageContextProvider {
	return &PageContext{
		Locale:     p.Locale,
		URL:        p.URL,
		Localizer:  p.Localizer,
		Endpoints:  p.Endpoints,
		prefix:     prefix,
		authzState: p.authzState,
	}
}

var jsLocales = map[string]string{
	"en": "en-US", "en-US": "en-US", "en-GB": "en-GB",
	"ru": "ru-RU", "ru-RU": "ru-RU",
	"uz": "uz-UZ", "uz-UZ": "uz-UZ", "uz-Latn": "uz-UZ", "uz-Cyrl": "uz-Cyrl-UZ",
	"kk": "kk-KZ", "tr": "tr-TR", "de": "de-DE", "fr": "fr-FR", "es": "es-ES",
	"zh": "zh-CN", "zh-CN": "zh-CN", "zh-TW": "zh-TW",
	"ja": "ja-JP", "ko": "ko-KR", "ar": "ar-SA", "uk": "uk-UA", "pl": "pl-PL",
}

// ToJSLocale converts the page locale to a locale string understood by
// toLocaleString() and Intl APIs. Unknown locales default to "en-US".
func (p *PageContext) ToJSLocale() string {
	if js, ok := jsLocales[p.Locale.String()]; ok {
		return js
	}
	return "en-US"
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}

func (p *PageContext) Host() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Hostname()
}

func (p *PageContext) Path() string {
	if p.URL == nil || p.URL.Path == "" {
		return "/"
	}
	return p.URL.Path
}

func (p *PageContext) FullURL() string {
	if p.URL == nil {
		return ""
	}
	u := url.URL{Scheme: p.URL.Scheme, Host: p.URL.Host, Path: p.URL.Path}
	return strings.TrimRight(u.String(), "/")
}

func (p *PageContext) URLIs(patterns ...string) bool {
	full := p.FullURL()
	path := p.Path()
	for _, pattern := range patterns {
		target := full
		if strings.HasPrefix(pattern, "/") {
			target = path
		}
		if routing.Is(pattern, target) {
			return true
		}
	}
	return false
}

func (p *PageContext) HomeURL() string {
	if p.Endpoints == nil {
		return "/"
	}
	return p.Endpoints.Home()
}

func (p *PageContext) AuthzState() *authz.ViewState {
	return p.authzState
}

func (p *PageContext) SetAuthzState(state *authz.ViewState) {
	p.authzState = state
}

func (p *PageContext) CanAuthz(object, action string) bool {
	if p.authzState == nil {
		return false
	}
	return p.authzState.Capability(authz.CapabilityKey(object, action))
}
