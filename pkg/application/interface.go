package application

import (
	"embed"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/spotlight"
)

// Controller registers HTTP routes. Key must be unique per application.
type Controller interface {
	Register(r *mux.Router)
	Key() string
}

// Module contributes menu entries, controllers and locales to an application.
type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the registry modules are wired into.
type Application interface {
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	RegisterLocaleFiles(fs ...*embed.FS)

	// Menu returns the registered menu. The result must not be mutated;
	// per-request variants are derived with menu.Elements transforms.
	Menu() menu.Elements
	RegisterMenu(elements ...menu.Element)

	Controllers() []Controller
	RegisterControllers(controllers ...Controller)
	Middleware() []mux.MiddlewareFunc
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)

	Endpoints() *routing.RouterEndpoints
	QuickLinks() *spotlight.QuickLinks

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}
}
