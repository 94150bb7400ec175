package logging

import (
	"embed"
	"net/http"

	"github.com/sirupsen/logrus"
	g "maragu.dev/gomponents"

	"github.com/iota-uz/iota-menu/modules/core/presentation/controllers"
	"github.com/iota-uz/iota-menu/modules/logging/presentation/views"
	"github.com/iota-uz/iota-menu/modules/logging/services"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/spotlight"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

type ModuleOptions struct {
	// Logger receives the error counting hook. Defaults to the standard logger.
	Logger *logrus.Logger
	// Retain is the number of recent errors kept for the logs page.
	Retain int
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{
		options: opts,
	}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	logger := m.options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	counter := services.NewErrorCounter(m.options.Retain)
	logger.AddHook(counter)

	page := LogsPage{BasePath: "/logs", Counter: counter}
	app.RegisterLocaleFiles(&localeFiles)
	app.RegisterServices(counter)
	app.RegisterMenu(LogsLink(page))
	app.RegisterControllers(
		controllers.NewPageController(app, controllers.PageOptions{
			BasePath:    page.BasePath,
			TitleKey:    "Logs.Title",
			AuthzObject: LogsObject,
			AuthzAction: "view",
			Content: func(r *http.Request) g.Node {
				return views.Logs(composables.UsePageCtx(r.Context()), counter.Recent())
			},
		}),
	)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(page.MenuIcon(), "NavigationLinks.Logs", page.BasePath).
			RequireAuthz(LogsObject, "view"),
	)
	return nil
}

func (m *Module) Name() string {
	return "logging"
}
