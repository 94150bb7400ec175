package core

import (
	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

var (
	UsersObject  = authz.ObjectName("core", "users")
	RolesObject  = authz.ObjectName("core", "roles")
	GroupsObject = authz.ObjectName("core", "groups")
)

func DashboardLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Dashboard", menu.URL("/"), menu.WithIcon(icon.New("gauge"))).
		Translated().
		WhenActive(menu.ActiveExact())
}

func UsersLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Users", menu.URL("/users")).
		Translated().
		RequireAuthz(UsersObject, "list")
}

func RolesLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Roles", menu.URL("/roles")).
		Translated().
		RequireAuthz(RolesObject, "list")
}

func GroupsLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Groups", menu.URL("/groups")).
		Translated().
		RequireAuthz(GroupsObject, "list")
}

// SettingsLink stays active on every settings sub-page.
func SettingsLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Settings", menu.URL("/settings/logo")).
		Translated().
		WhenActive(func(pc types.PageContextProvider, _, _ string, _ *menu.Item) bool {
			return routing.HasPathPrefixOnBoundary(pc.Path(), "/settings")
		})
}

func AdministrationLink() *menu.Group {
	return menu.NewGroup("NavigationLinks.Administration",
		UsersLink(),
		RolesLink(),
		GroupsLink(),
		SettingsLink(),
	).Translated().SetIcon(icon.New("air-traffic-control"))
}

func NavItems() menu.Elements {
	return menu.Elements{
		DashboardLink(),
		AdministrationLink(),
	}
}
