package core

import (
	"embed"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/modules/core/presentation/controllers"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/spotlight"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterMenu(NavItems()...)
	app.RegisterControllers(
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath:  "/",
			RouteName: routing.HomeRouteName,
			TitleKey:  "NavigationLinks.Dashboard",
		}),
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath:    "/users",
			TitleKey:    "NavigationLinks.Users",
			AuthzObject: UsersObject,
			AuthzAction: "list",
		}),
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath:    "/roles",
			TitleKey:    "NavigationLinks.Roles",
			AuthzObject: RolesObject,
			AuthzAction: "list",
		}),
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath:    "/groups",
			TitleKey:    "NavigationLinks.Groups",
			AuthzObject: GroupsObject,
			AuthzAction: "list",
		}),
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath: "/settings/logo",
			TitleKey: "NavigationLinks.Settings",
		}),
		controllers.NewSpotlightController(app),
	)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icon.New("users"), "NavigationLinks.Users", "/users").
			RequireAuthz(UsersObject, "list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
