package composables

import (
	"context"

	"github.com/iota-uz/iota-menu/pkg/constants"
	"github.com/iota-uz/iota-menu/pkg/menu"
)

// WithMenu stores the menu prepared for the current request along with
// the unfiltered visible tree.
func WithMenu(ctx context.Context, visible, all menu.Elements) context.Context {
	ctx = context.WithValue(ctx, constants.AllMenuKey, all)
	return context.WithValue(ctx, constants.MenuKey, visible)
}

// UseMenu returns the menu prepared for the current request.
// If the menu is not found, the second return value will be false.
func UseMenu(ctx context.Context) (menu.Elements, bool) {
	els, ok := ctx.Value(constants.MenuKey).(menu.Elements)
	return els, ok
}

// UseAllMenu returns the visible menu before presentation transforms
// such as top mode or empty group removal.
func UseAllMenu(ctx context.Context) (menu.Elements, bool) {
	els, ok := ctx.Value(constants.AllMenuKey).(menu.Elements)
	return els, ok
}
