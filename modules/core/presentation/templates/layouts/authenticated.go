// Package layouts renders the panel shell around module pages.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	menucomponents "github.com/iota-uz/iota-menu/components/menu"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/menu"
)

type AuthenticatedProps struct {
	Title string
}

func component(ctx context.Context, comp templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return comp.Render(ctx, w)
	})
}

// topMode reports whether the request menu was prepared for the top bar.
func topMode(els menu.Elements) bool {
	return len(els) > 0 && els[0].IsTopMode()
}

func navigation(ctx context.Context) g.Node {
	els, ok := composables.UseMenu(ctx)
	if !ok {
		return nil
	}
	if topMode(els) {
		return html.Header(html.Class("topbar"), component(ctx, menucomponents.TopBar()))
	}
	return html.Aside(html.Class("sidebar"), component(ctx, menucomponents.Sidebar()))
}

func spotlight(ctx context.Context) g.Node {
	pageCtx := composables.UsePageCtx(ctx)
	placeholder := pageCtx.TSafe("Spotlight.Placeholder")
	if placeholder == "" {
		placeholder = "Search"
	}
	return html.Form(
		html.Class("spotlight"),
		html.Action("/spotlight/search"),
		html.Method("get"),
		html.Input(html.Type("search"), html.Name("q"), html.Placeholder(placeholder)),
	)
}

// Authenticated renders content inside the panel shell: the request menu,
// the spotlight search box and the page title.
func Authenticated(props AuthenticatedProps, content ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return c.HTML5(c.HTML5Props{
			Title:    props.Title,
			Language: pageCtx.GetLocale().String(),
			Body: []g.Node{
				html.Div(
					html.Class("layout flex"),
					navigation(ctx),
					html.Main(
						html.Class("content flex-1"),
						spotlight(ctx),
						html.H1(g.Text(props.Title)),
						g.Group(content),
					),
				),
			},
		}).Render(w)
	})
}
