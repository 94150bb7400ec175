package controllers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/components/authorization"
	"github.com/iota-uz/iota-menu/modules/core/presentation/templates/layouts"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/composables"
)

// PageOptions describes a page reachable from the menu.
type PageOptions struct {
	BasePath string
	// RouteName names the mux route, e.g. routing.HomeRouteName.
	RouteName string
	TitleKey  string
	// AuthzObject and AuthzAction gate the page with the same capability
	// its menu entry requires. Empty object means public.
	AuthzObject string
	AuthzAction string
	Content     func(r *http.Request) g.Node
}

type PageController struct {
	app  application.Application
	opts PageOptions
}

func NewPageController(app application.Application, opts PageOptions) application.Controller {
	return &PageController{
		app:  app,
		opts: opts,
	}
}

func (c *PageController) Key() string {
	return c.opts.BasePath
}

func (c *PageController) Register(r *mux.Router) {
	route := r.HandleFunc(c.opts.BasePath, c.Get).Methods(http.MethodGet)
	if c.opts.RouteName != "" {
		route.Name(c.opts.RouteName)
	}
}

func (c *PageController) authorized(w http.ResponseWriter, r *http.Request) bool {
	if c.opts.AuthzObject == "" {
		return true
	}
	pageCtx := composables.UsePageCtx(r.Context())
	if pageCtx.CanAuthz(c.opts.AuthzObject, c.opts.AuthzAction) {
		return true
	}
	composables.UseLogger(r.Context()).WithField("object", c.opts.AuthzObject).
		WithField("action", c.opts.AuthzAction).
		Warn("page access denied")
	authorization.WriteForbidden(w, r, c.opts.AuthzObject, c.opts.AuthzAction)
	return false
}

func (c *PageController) Get(w http.ResponseWriter, r *http.Request) {
	if !c.authorized(w, r) {
		return
	}
	pageCtx := composables.UsePageCtx(r.Context())
	title := pageCtx.TSafe(c.opts.TitleKey)
	if title == "" {
		title = c.opts.TitleKey
	}
	var content g.Node
	if c.opts.Content != nil {
		content = c.opts.Content(r)
	} else {
		content = html.P(html.Class("page-placeholder"), g.Text(pageCtx.TSafe("Pages.Placeholder")))
	}
	templ.Handler(layouts.Authenticated(layouts.AuthenticatedProps{Title: title}, content)).ServeHTTP(w, r)
}
