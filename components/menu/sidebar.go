package menu

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/iota-menu/pkg/composables"
)

// Sidebar renders the request menu prepared by middleware.ProvideMenu.
// Nothing is rendered when no menu is attached to the context.
func Sidebar() templ.Component {
	return navigation(false)
}

// TopBar renders the request menu as a horizontal bar.
func TopBar() templ.Component {
	return navigation(true)
}

func navigation(top bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		els, ok := composables.UseMenu(ctx)
		if !ok {
			return nil
		}
		pc := composables.UsePageCtx(ctx)
		views, err := els.Views(pc)
		if err != nil {
			return err
		}
		return Render(ctx, w, views, top)
	})
}
