package application

import (
	"context"
	"embed"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
)

//go:embed testdata/locales/*
var testLocales embed.FS

type testController struct {
	key string
}

func (c *testController) Register(r *mux.Router) {
	r.HandleFunc(c.key, func(http.ResponseWriter, *http.Request) {}).Name(routing.HomeRouteName)
}

func (c *testController) Key() string {
	return c.key
}

type counter struct {
	n int
}

func TestApplication_Menu(t *testing.T) {
	t.Parallel()

	app := New(&ApplicationOptions{})
	app.RegisterMenu(menu.NewItem("Dashboard", menu.URL("/")))
	app.RegisterMenu(menu.NewGroup("Admin"), menu.NewItem("Docs", menu.URL("/docs")))

	els := app.Menu()
	require.Len(t, els, 3)
	els[0] = nil
	assert.NotNil(t, app.Menu()[0])
}

func TestApplication_Controllers(t *testing.T) {
	t.Parallel()

	app := New(&ApplicationOptions{})
	app.RegisterControllers(&testController{key: "/b"}, &testController{key: "/a"}, &testController{key: "/b"})

	controllers := app.Controllers()
	require.Len(t, controllers, 2)
	assert.Equal(t, "/a", controllers[0].Key())
	assert.Equal(t, "/b", controllers[1].Key())
}

func TestApplication_Endpoints(t *testing.T) {
	t.Parallel()

	app := New(&ApplicationOptions{HomePath: "/start"})
	assert.Equal(t, "/start", app.Endpoints().Home())

	r := mux.NewRouter()
	(&testController{key: "/dashboard"}).Register(r)
	app.Endpoints().Bind(r)
	assert.Equal(t, "/dashboard", app.Endpoints().Home())
}

func TestApplication_LocaleFiles(t *testing.T) {
	t.Parallel()

	app := New(&ApplicationOptions{})
	app.RegisterLocaleFiles(&testLocales)
	assert.Equal(t, []string{"en", "zh"}, app.GetSupportedLanguages())

	for lang, want := range map[string]string{"en": "Users", "zh": "用户"} {
		l := i18n.NewLocalizer(app.Bundle(), lang)
		got, err := l.Localize(&i18n.LocalizeConfig{MessageID: "NavigationLinks.Users"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestApplication_Services(t *testing.T) {
	t.Parallel()

	app := New(&ApplicationOptions{})
	svc := &counter{n: 1}
	app.RegisterServices(svc)
	assert.Same(t, svc, app.Service(counter{}).(*counter))
	assert.Len(t, app.Services(), 1)
	assert.Panics(t, func() { app.Service(testController{}) })
}

func TestUseApp(t *testing.T) {
	t.Parallel()

	_, err := UseApp(context.Background())
	require.ErrorIs(t, err, ErrAppNotFound)

	app := New(&ApplicationOptions{SupportedLanguages: []string{"en"}})
	got, err := UseApp(WithApp(context.Background(), app))
	require.NoError(t, err)
	assert.Same(t, app, got)
}
