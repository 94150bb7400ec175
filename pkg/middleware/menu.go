package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/menu"
)

var menuBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "menu",
	Name:      "build_seconds",
	Help:      "Time spent preparing the per-request menu.",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
})

// MenuProvider exposes the registered menu configuration.
type MenuProvider interface {
	Menu() menu.Elements
}

type MenuOptions struct {
	TopMode         bool
	HideEmptyGroups bool
}

// ProvideMenu filters the registered menu for the current page context and
// stores it in the request context. Groups left without children are kept
// unless HideEmptyGroups is set.
func ProvideMenu(app MenuProvider, opts MenuOptions) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				pageCtx := composables.UsePageCtx(r.Context())

				all := app.Menu().OnlyVisible(pageCtx)
				visible := all
				if opts.HideEmptyGroups {
					visible = visible.WithoutEmptyGroups()
				}
				if opts.TopMode {
					visible = visible.TopMode(nil)
				}

				elapsed := time.Since(start)
				menuBuildSeconds.Observe(elapsed.Seconds())
				composables.TryUseLogger(r.Context()).WithFields(logrus.Fields{
					"menu-elements": len(visible),
					"menu-items":    len(visible.Flatten()),
					"duration":      elapsed,
				}).Debug("menu prepared")

				ctx := composables.WithMenu(r.Context(), visible, all)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
