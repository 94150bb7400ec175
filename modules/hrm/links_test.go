package hrm

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/types"
)

func pageAt(t *testing.T, raw string, caps ...string) *types.PageContext {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	pc := &types.PageContext{Locale: language.English, URL: u}
	state := authz.NewViewState("tenant:global:user:test", "global")
	for _, c := range caps {
		state.SetCapability(c, true)
	}
	pc.SetAuthzState(state)
	return pc
}

func TestEmployeesLink_FilledByPage(t *testing.T) {
	t.Parallel()

	link := EmployeesLink()
	assert.Equal(t, "users-three", link.Icon().Name)
	assert.Equal(t, employeesPage, link.Filler())

	u, err := link.URL()
	require.NoError(t, err)
	assert.Equal(t, "/hrm/employees", u)

	for raw, want := range map[string]bool{
		"http://localhost/hrm/employees":     true,
		"http://localhost/hrm/employees/42":  true,
		"http://localhost/hrm/employees-old": false,
		"http://localhost/hrm":               false,
	} {
		active, err := link.IsActive(pageAt(t, raw))
		require.NoError(t, err)
		assert.Equal(t, want, active, raw)
	}
}

func groupItems(t *testing.T, els menu.Elements) menu.Elements {
	t.Helper()
	require.Len(t, els, 1)
	group, ok := els[0].(*menu.Group)
	require.True(t, ok)
	return group.Items()
}

func TestHRMLink_Visibility(t *testing.T) {
	t.Parallel()

	denied := NavItems().OnlyVisible(pageAt(t, "http://localhost/"))
	assert.Empty(t, groupItems(t, denied))
	assert.Empty(t, denied.WithoutEmptyGroups())

	allowed := NavItems().OnlyVisible(pageAt(t, "http://localhost/", "hrm.employees.list"))
	assert.Len(t, groupItems(t, allowed), 1)

	active, err := allowed[0].IsActive(pageAt(t, "http://localhost/hrm/employees/7"))
	require.NoError(t, err)
	assert.True(t, active)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	app := application.New(&application.ApplicationOptions{})
	m := NewModule()
	require.NoError(t, m.Register(app))

	assert.Equal(t, "hrm", m.Name())
	require.Len(t, app.Menu(), 1)
	require.Len(t, app.Controllers(), 1)
	assert.Equal(t, "/hrm/employees", app.Controllers()[0].Key())
	assert.Equal(t, []authz.Capability{{Object: "hrm.employees", Action: "list"}}, app.QuickLinks().AuthzRequirements())
}
