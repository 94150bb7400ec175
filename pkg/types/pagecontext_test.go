package types

import (
	"net/url"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/routing"
)

func newPageContext(t *testing.T, rawURL string) *PageContext {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)

	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English,
		&i18n.Message{ID: "NavigationLinks.Users", Other: "Users"},
		&i18n.Message{ID: "Menu.NavigationLinks.Users", Other: "Menu users"},
	))

	return &PageContext{
		Locale:    language.English,
		URL:       u,
		Localizer: i18n.NewLocalizer(bundle, "en"),
		Endpoints: routing.StaticEndpoints{HomeURL: "/dashboard"},
	}
}

func TestPageContext_URLParts(t *testing.T) {
	t.Parallel()

	pc := newPageContext(t, "https://admin.example.com:8443/users/42/?tab=roles")
	assert.Equal(t, "admin.example.com", pc.Host())
	assert.Equal(t, "/users/42/", pc.Path())
	assert.Equal(t, "https://admin.example.com:8443/users/42", pc.FullURL())
	assert.Equal(t, "/dashboard", pc.HomeURL())

	root := newPageContext(t, "http://localhost")
	assert.Equal(t, "/", root.Path())
	assert.Equal(t, "http://localhost", root.FullURL())
}

func TestPageContext_URLIs(t *testing.T) {
	t.Parallel()

	pc := newPageContext(t, "http://localhost/users/42?x=1")

	assert.True(t, pc.URLIs("*/users*"))
	assert.True(t, pc.URLIs("http://localhost/users/42"))
	assert.True(t, pc.URLIs("/users/42"))
	assert.False(t, pc.URLIs("/users"))
	assert.True(t, pc.URLIs("/roles", "/users/*"))
	assert.False(t, pc.URLIs("*/roles*"))
}

func TestPageContext_Translations(t *testing.T) {
	t.Parallel()

	pc := newPageContext(t, "http://localhost/")
	assert.Equal(t, "Users", pc.T("NavigationLinks.Users"))
	assert.Equal(t, "", pc.TSafe("Missing.Key"))
	assert.Equal(t, "Menu users", pc.Namespace("Menu").TSafe("NavigationLinks.Users"))
	assert.Panics(t, func() { pc.T("Missing.Key") })
	assert.Equal(t, "en-US", pc.ToJSLocale())

	var empty PageContext
	assert.Equal(t, "", empty.TSafe("NavigationLinks.Users"))
	assert.Equal(t, "/", empty.HomeURL())
}

func TestPageContext_CanAuthz(t *testing.T) {
	t.Parallel()

	pc := newPageContext(t, "http://localhost/")
	assert.False(t, pc.CanAuthz("core.users", "list"))

	state := authz.NewViewState("tenant:global:user:1", "global")
	state.SetCapability("core.users.list", true)
	pc.SetAuthzState(state)

	assert.True(t, pc.CanAuthz("Core.Users", "LIST"))
	assert.False(t, pc.CanAuthz("core.roles", "list"))
	assert.Same(t, state, pc.Namespace("x").AuthzState())
}
