package routing

import (
	"sync"

	"github.com/gorilla/mux"
)

// HomeRouteName is the mux route name that identifies the panel home page.
const HomeRouteName = "home"

// Endpoints exposes canonical URLs of the admin panel.
type Endpoints interface {
	Home() string
}

// StaticEndpoints returns fixed URLs.
type StaticEndpoints struct {
	HomeURL string
}

func (e StaticEndpoints) Home() string {
	return e.HomeURL
}

// RouterEndpoints resolves URLs from named routes of a mux router.
// The router is bound once it has been built; until then, and whenever the
// route is missing, the fallback is returned.
type RouterEndpoints struct {
	fallback string
	mu       sync.RWMutex
	router   *mux.Router
}

func NewRouterEndpoints(fallback string) *RouterEndpoints {
	if fallback == "" {
		fallback = "/"
	}
	return &RouterEndpoints{fallback: fallback}
}

// Bind attaches the router used to resolve named routes.
func (e *RouterEndpoints) Bind(r *mux.Router) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.router = r
}

func (e *RouterEndpoints) Home() string {
	e.mu.RLock()
	r := e.router
	e.mu.RUnlock()
	if r == nil {
		return e.fallback
	}
	route := r.Get(HomeRouteName)
	if route == nil {
		return e.fallback
	}
	u, err := route.URL()
	if err != nil {
		return e.fallback
	}
	return u.String()
}
