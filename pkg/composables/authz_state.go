package composables

import (
	"context"

	"github.com/iota-uz/iota-menu/pkg/authz"
)

// UseAuthzViewState returns the authz.ViewState stored in the context, when available.
func UseAuthzViewState(ctx context.Context) *authz.ViewState {
	return authz.ViewStateFromContext(ctx)
}

// WithAuthzViewState attaches an authz.ViewState to the context. The page
// context, when present, is updated as well so menu visibility sees it.
func WithAuthzViewState(ctx context.Context, state *authz.ViewState) context.Context {
	if pc, ok := TryUsePageCtx(ctx); ok {
		pc.SetAuthzState(state)
	}
	return authz.WithViewState(ctx, state)
}
