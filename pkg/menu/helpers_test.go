package menu

import (
	"errors"
	"net/url"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

var errBroken = errors.New("broken producer")

func pageAt(t *testing.T, raw string) *types.PageContext {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return &types.PageContext{
		Locale:    language.English,
		URL:       u,
		Endpoints: routing.StaticEndpoints{HomeURL: "/dashboard"},
	}
}

func withCapabilities(pc *types.PageContext, caps map[string]bool) *types.PageContext {
	state := authz.NewViewState("tenant:global:user:test", "global")
	for k, v := range caps {
		state.SetCapability(k, v)
	}
	pc.SetAuthzState(state)
	return pc
}

func withMessages(t *testing.T, pc *types.PageContext, messages ...*i18n.Message) *types.PageContext {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English, messages...))
	pc.Localizer = i18n.NewLocalizer(bundle, "en")
	return pc
}

type testFiller struct {
	url    string
	active bool
}

func (f testFiller) URL() (string, error) {
	return f.url, nil
}

func (f testFiller) IsActive(types.PageContextProvider) bool {
	return f.active
}

type badgeFiller struct {
	testFiller
	badge string
	icon  string
}

func (f badgeFiller) Badge() string {
	return f.badge
}

func (f badgeFiller) MenuIcon() icon.Icon {
	return icon.New(f.icon)
}
