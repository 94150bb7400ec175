package controllers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/httpapi"
	"github.com/iota-uz/iota-menu/pkg/spotlight"
)

const spotlightLimit = 10

type SpotlightController struct {
	app      application.Application
	basePath string
}

func NewSpotlightController(app application.Application) application.Controller {
	return &SpotlightController{
		app:      app,
		basePath: "/spotlight",
	}
}

func (c *SpotlightController) Key() string {
	return c.basePath
}

func (c *SpotlightController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/search", c.Search).Methods(http.MethodGet)
}

func (c *SpotlightController) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(composables.GetLastQueryParam(r, "q"))
	items, err := c.app.QuickLinks().Find(r.Context(), q)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("spotlight search failed")
		if httpapi.WantsJSON(r) {
			_ = httpapi.WriteError(w, http.StatusInternalServerError, "SPOTLIGHT_FAILED", "search failed", httpapi.RouteMeta(w, r))
			return
		}
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}
	if len(items) > spotlightLimit {
		items = items[:spotlightLimit]
	}
	if httpapi.WantsJSON(r) {
		if items == nil {
			items = []spotlight.Item{}
		}
		if err := httpapi.WriteJSON(w, http.StatusOK, items); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Warn("failed to encode spotlight results")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	node := html.Ul(
		html.Class("spotlight-results"),
		g.Map(items, func(it spotlight.Item) g.Node {
			return html.Li(itemNode(r.Context(), it))
		}),
	)
	if err := node.Render(w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render spotlight results")
	}
}

func itemNode(ctx context.Context, it spotlight.Item) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return it.Render(ctx, w)
	})
}
