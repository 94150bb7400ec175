package core

import (
	"net/url"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

func pageAt(t *testing.T, bundle *i18n.Bundle, lang, raw string) *types.PageContext {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	pc := &types.PageContext{
		Locale:    language.Make(lang),
		URL:       u,
		Endpoints: routing.StaticEndpoints{HomeURL: "/"},
	}
	if bundle != nil {
		pc.Localizer = i18n.NewLocalizer(bundle, lang)
	}
	return pc
}

func TestNavItems_AuthzRequirements(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []authz.Capability{
		{Object: "core.users", Action: "list"},
		{Object: "core.roles", Action: "list"},
		{Object: "core.groups", Action: "list"},
	}, NavItems().AuthzRequirements())
}

func TestSettingsLink_ActiveOnSettingsPages(t *testing.T) {
	t.Parallel()

	link := SettingsLink()
	for raw, want := range map[string]bool{
		"http://localhost/settings/logo":     true,
		"http://localhost/settings/branding": true,
		"http://localhost/settings":          true,
		"http://localhost/settingsx":         false,
		"http://localhost/users":             false,
	} {
		active, err := link.IsActive(pageAt(t, nil, "en", raw))
		require.NoError(t, err)
		assert.Equal(t, want, active, raw)
	}
}

func TestDashboardLink_ActiveOnlyAtRoot(t *testing.T) {
	t.Parallel()

	active, err := DashboardLink().IsActive(pageAt(t, nil, "en", "http://localhost/"))
	require.NoError(t, err)
	assert.True(t, active)

	active, err = DashboardLink().IsActive(pageAt(t, nil, "en", "http://localhost/users"))
	require.NoError(t, err)
	assert.False(t, active)

	pc := pageAt(t, nil, "en", "http://localhost/users")
	pc.Endpoints = routing.StaticEndpoints{HomeURL: "/dashboard"}
	active, err = DashboardLink().IsActive(pc)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	app := application.New(&application.ApplicationOptions{})
	require.NoError(t, NewModule().Register(app))

	els := app.Menu()
	require.Len(t, els, 2)
	group, ok := els[1].(*menu.Group)
	require.True(t, ok)
	assert.Len(t, group.Items(), 4)

	label, err := group.Label(pageAt(t, app.Bundle(), "en", "http://localhost/"))
	require.NoError(t, err)
	assert.Equal(t, "Administration", label)

	label, err = group.Label(pageAt(t, app.Bundle(), "zh", "http://localhost/"))
	require.NoError(t, err)
	assert.Equal(t, "管理", label)

	keys := make([]string, 0, len(app.Controllers()))
	for _, c := range app.Controllers() {
		keys = append(keys, c.Key())
	}
	assert.ElementsMatch(t, []string{"/", "/users", "/roles", "/groups", "/settings/logo", "/spotlight"}, keys)
	assert.Equal(t, []authz.Capability{{Object: "core.users", Action: "list"}}, app.QuickLinks().AuthzRequirements())
}
