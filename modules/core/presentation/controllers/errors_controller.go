package controllers

import (
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/modules/core/presentation/templates/layouts"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/httpapi"
)

// NotFound renders the 404 page inside the panel shell. The server wraps
// it with the application middleware, so the page context and the request
// menu are available.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if httpapi.WantsJSON(r) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found", httpapi.RouteMeta(w, r))
			return
		}
		pageCtx, ok := composables.TryUsePageCtx(r.Context())
		if !ok {
			http.NotFound(w, r)
			return
		}
		title := pageCtx.TSafe("Errors.NotFound.Title")
		if title == "" {
			title = "Page not found"
		}
		content := html.P(html.Class("not-found"), g.Text(r.URL.Path))
		templ.Handler(
			layouts.Authenticated(layouts.AuthenticatedProps{Title: title}, content),
			templ.WithStatus(http.StatusNotFound),
		).ServeHTTP(w, r)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if httpapi.WantsJSON(r) {
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", httpapi.RouteMeta(w, r))
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
