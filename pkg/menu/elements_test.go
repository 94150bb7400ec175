package menu

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/types"
)

func hidden(types.PageContextProvider) bool {
	return false
}

func sampleTree() Elements {
	return Elements{
		NewItem("Dashboard", URL("/dashboard"), WithIcon(icon.New("gauge"))),
		NewGroup("Administration",
			NewItem("Users", URL("/users")).RequireAuthz("core.users", "list"),
			NewItem("Roles", URL("/roles")).RequireAuthz("core.roles", "list"),
			NewGroup("Audit",
				NewItem("Logs", URL("/logs")).RequireAuthz("logging.logs", "view"),
			),
		),
		NewItem("Docs", URL("https://docs.example.com"), WithBlank(true)),
	}
}

func labels(t *testing.T, els Elements) []string {
	t.Helper()
	out := make([]string, 0, len(els))
	for _, el := range els {
		l, err := el.Label(nil)
		require.NoError(t, err)
		out = append(out, l)
	}
	return out
}

func TestElements_TopMode(t *testing.T) {
	t.Parallel()

	src := sampleTree()
	top := src.TopMode(nil)

	require.Len(t, top, len(src))
	assert.Equal(t, labels(t, src), labels(t, top))

	for i := range src {
		assert.NotSame(t, src[i], top[i])
		assert.False(t, src[i].IsTopMode())
		assert.True(t, top[i].IsTopMode())
	}

	srcGroup := src[1].(*Group)
	topGroup := top[1].(*Group)
	assert.Equal(t, labels(t, srcGroup.Items()), labels(t, topGroup.Items()))
	for i, el := range topGroup.Items() {
		assert.NotSame(t, srcGroup.Items()[i], el)
		assert.True(t, el.IsTopMode())
		assert.False(t, srcGroup.Items()[i].IsTopMode())
	}

	nested := topGroup.Items()[2].(*Group)
	require.Len(t, nested.Items(), 1)
	assert.True(t, nested.Items()[0].IsTopMode())
	assert.False(t, srcGroup.Items()[2].(*Group).Items()[0].IsTopMode())
}

func TestElements_TopModeCondition(t *testing.T) {
	t.Parallel()

	onlyGroups := func(el Element) bool {
		_, ok := el.(*Group)
		return ok
	}
	top := sampleTree().TopMode(onlyGroups)

	assert.False(t, top[0].IsTopMode())
	assert.True(t, top[1].IsTopMode())
	assert.False(t, top[1].(*Group).Items()[0].IsTopMode())
}

func TestElements_TopModeKeepsBehaviour(t *testing.T) {
	t.Parallel()

	pc := pageAt(t, "http://localhost/users/1")
	src := Elements{NewItem("Users", URL("/users")).SetBadge(func() string { return "2" }).WithAttributes(templ.Attributes{"data-x": "1"})}
	top := src.TopMode(nil)

	item := top[0].(*Item)
	active, err := item.IsActive(pc)
	require.NoError(t, err)
	assert.True(t, active)
	badge, err := item.Badge()
	require.NoError(t, err)
	assert.Equal(t, "2", badge)

	item.WithAttributes(templ.Attributes{"data-x": "2"})
	assert.Equal(t, "1", src[0].Attributes()["data-x"])
}

func TestElements_OnlyVisible(t *testing.T) {
	t.Parallel()

	t.Run("filters nested items", func(t *testing.T) {
		t.Parallel()
		pc := withCapabilities(pageAt(t, "http://localhost/"), map[string]bool{
			"core.users.list":   true,
			"core.roles.list":   false,
			"logging.logs.view": true,
		})
		src := sampleTree()
		visible := src.OnlyVisible(pc)

		assert.Equal(t, []string{"Dashboard", "Administration", "Docs"}, labels(t, visible))
		admin := visible[1].(*Group)
		assert.Equal(t, []string{"Users", "Audit"}, labels(t, admin.Items()))

		assert.NotSame(t, src[1], visible[1])
		assert.Len(t, src[1].(*Group).Items(), 3)
		assert.Same(t, src[0], visible[0])
	})

	t.Run("retains empty groups", func(t *testing.T) {
		t.Parallel()
		pc := withCapabilities(pageAt(t, "http://localhost/"), nil)
		visible := sampleTree().OnlyVisible(pc)

		require.Len(t, visible, 3)
		admin := visible[1].(*Group)
		require.Len(t, admin.Items(), 1)
		audit := admin.Items()[0].(*Group)
		assert.Empty(t, audit.Items())
	})

	t.Run("hidden group", func(t *testing.T) {
		t.Parallel()
		els := Elements{NewGroup("G", NewItem("A", URL("/a"))).CanSee(hidden)}
		assert.Empty(t, els.OnlyVisible(pageAt(t, "http://localhost/")))
	})

	t.Run("group active uses original items", func(t *testing.T) {
		t.Parallel()
		a := NewItem("A", URL("/a"))
		b := NewItem("B", URL("/b")).CanSee(hidden)
		g := NewGroup("G", a, b)
		pc := pageAt(t, "http://localhost/b")

		visible := g.Items().OnlyVisible(pc)
		require.Len(t, visible, 1)
		assert.Same(t, a, visible[0])

		active, err := g.IsActive(pc)
		require.NoError(t, err)
		assert.True(t, active)

		filtered := Elements{g}.OnlyVisible(pc)[0].(*Group)
		active, err = filtered.IsActive(pc)
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestElements_WithoutEmptyGroups(t *testing.T) {
	t.Parallel()

	pc := withCapabilities(pageAt(t, "http://localhost/"), map[string]bool{"core.users.list": true})
	src := sampleTree().OnlyVisible(pc)
	compact := src.WithoutEmptyGroups()

	assert.Equal(t, []string{"Dashboard", "Administration", "Docs"}, labels(t, compact))
	assert.Equal(t, []string{"Users"}, labels(t, compact[1].(*Group).Items()))
	assert.Len(t, src[1].(*Group).Items(), 2)

	none := withCapabilities(pageAt(t, "http://localhost/"), nil)
	assert.Equal(t, []string{"Dashboard", "Docs"}, labels(t, sampleTree().OnlyVisible(none).WithoutEmptyGroups()))
}

func TestElements_Flatten(t *testing.T) {
	t.Parallel()

	items := sampleTree().Flatten()
	got := make([]string, 0, len(items))
	for _, it := range items {
		l, err := it.Label(nil)
		require.NoError(t, err)
		got = append(got, l)
	}
	assert.Equal(t, []string{"Dashboard", "Users", "Roles", "Logs", "Docs"}, got)
}

func TestElements_AuthzRequirements(t *testing.T) {
	t.Parallel()

	tree := append(sampleTree(),
		NewGroup("Again", NewItem("Users", URL("/users")).RequireAuthz("core.users", "LIST")).RequireAuthz("core.users", "list"),
	)
	assert.Equal(t, []authz.Capability{
		{Object: "core.users", Action: "list"},
		{Object: "core.roles", Action: "list"},
		{Object: "logging.logs", Action: "view"},
	}, tree.AuthzRequirements())
}

func TestElements_Active(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	el, err := tree.Active(pageAt(t, "http://localhost/roles"))
	require.NoError(t, err)
	assert.Same(t, tree[1], el)

	el, err = tree.Active(pageAt(t, "http://localhost/nothing"))
	require.NoError(t, err)
	assert.Nil(t, el)
}

func TestElements_Views(t *testing.T) {
	t.Parallel()

	pc := withCapabilities(pageAt(t, "http://localhost/users/7"), map[string]bool{"core.users.list": true})
	views, err := sampleTree().OnlyVisible(pc).Views(pc)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, ItemView, views[0].Name)
	assert.Equal(t, "Dashboard", views[0].Label)
	assert.False(t, views[0].Active)
	assert.Equal(t, icon.New("gauge"), views[0].Icon)

	assert.True(t, views[1].IsGroup())
	assert.True(t, views[1].Active)
	require.Len(t, views[1].Children, 2)
	assert.Equal(t, "Users", views[1].Children[0].Label)
	assert.True(t, views[1].Children[0].Active)
	assert.Equal(t, "/users", views[1].Children[0].Data["url"])

	assert.Equal(t, "https://docs.example.com", views[2].Data["url"])
}

func TestElements_ViewsError(t *testing.T) {
	t.Parallel()

	tree := Elements{NewGroup("G", NewItem("Broken", URLFunc(func() (string, error) { return "", errBroken })))}
	_, err := tree.Views(pageAt(t, "http://localhost/"))
	require.ErrorIs(t, err, errBroken)
}
