package server

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/routing"
)

type homeController struct{}

func (homeController) Key() string {
	return "home"
}

func (homeController) Register(r *mux.Router) {
	r.HandleFunc("/dashboard", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("dashboard ", 200))
	}).Methods(http.MethodGet).Name(routing.HomeRouteName)
}

func TestHTTPServer_BindsEndpoints(t *testing.T) {
	t.Parallel()

	app := application.New(&application.ApplicationOptions{HomePath: "/"})
	app.RegisterControllers(homeController{})
	assert.Equal(t, "/", app.Endpoints().Home())

	srv := NewHTTPServer(app, nil, nil)
	srv.Router()
	assert.Equal(t, "/dashboard", app.Endpoints().Home())
}

func TestHTTPServer_Handler(t *testing.T) {
	t.Parallel()

	app := application.New(&application.ApplicationOptions{})
	app.RegisterControllers(homeController{})
	var seen []string
	app.RegisterMiddleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	})
	h := NewHTTPServer(app, nil, nil).Handler()

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "dashboard"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	assert.Equal(t, []string{"/dashboard", "/missing", "/dashboard"}, seen)
}
