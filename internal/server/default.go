package server

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/iota-menu/modules/core/presentation/controllers"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/configuration"
	"github.com/iota-uz/iota-menu/pkg/constants"
	"github.com/iota-uz/iota-menu/pkg/middleware"
	"github.com/iota-uz/iota-menu/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	// Authz evaluates menu capabilities. Defaults to authz.Use().
	Authz middleware.CapabilityResolver
}

// authzRequirements lists every capability pages may ask the view state
// about: menu entries and quick links.
func authzRequirements(app application.Application) func() []authz.Capability {
	return func() []authz.Capability {
		caps := app.Menu().AuthzRequirements()
		return append(caps, app.QuickLinks().AuthzRequirements()...)
	}
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	resolver := options.Authz
	if resolver == nil {
		resolver = authz.Use()
	}

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, middleware.LoggerOptionsFromConfig(conf)),

		middleware.Provide(constants.AppKey, app),

		middleware.TracedMiddleware("localizer"),
		middleware.ProvideLocalizer(app),

		middleware.TracedMiddleware("pageContext"),
		middleware.WithPageContext(app.Endpoints()),

		middleware.TracedMiddleware("authz"),
		middleware.WithAuthzState(resolver, conf.Authz.UserHeader, authzRequirements(app)),

		middleware.TracedMiddleware("menu"),
		middleware.ProvideMenu(app, middleware.MenuOptions{
			TopMode:         conf.Menu.TopMode,
			HideEmptyGroups: conf.Menu.HideEmptyGroups,
		}),
	}

	app.RegisterMiddleware(middlewares...)

	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(),
		controllers.MethodNotAllowed(),
	)
	return serverInstance, nil
}
