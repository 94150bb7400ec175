package hrm

import (
	"embed"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/modules/core/presentation/controllers"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/spotlight"
)

//go:embed presentation/locales/*.toml
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
			BasePath:    employeesPage.BasePath,
			TitleKey:    "Employees.Title",
			AuthzObject: EmployeesObject,
			AuthzAction: "list",
		}),
	)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(icon.New("plus-circle"), "NavigationLinks.Employees", employeesPage.BasePath).
			RequireAuthz(EmployeesObject, "list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "hrm"
}
