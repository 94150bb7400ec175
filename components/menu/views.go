// Package menu renders the navigation menu views: menu.group, menu.item and
// the menu.item-link action button view.
package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/components/actionbutton"
	pkgmenu "github.com/iota-uz/iota-menu/pkg/menu"
)

func init() {
	actionbutton.RegisterView(pkgmenu.ItemLinkView, ItemLink)
}

// component embeds a templ component into gomponents markup.
func component(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// Views renders every view with the template registered for its name.
func Views(ctx context.Context, views []pkgmenu.View) g.Node {
	nodes := make([]g.Node, 0, len(views))
	for _, v := range views {
		nodes = append(nodes, View(ctx, v))
	}
	return g.Group(nodes)
}

// View renders a single view.
func View(ctx context.Context, v pkgmenu.View) g.Node {
	switch v.Name {
	case pkgmenu.GroupView:
		return Group(ctx, v)
	case pkgmenu.ItemView:
		return Item(ctx, v)
	default:
		return g.Raw(fmt.Sprintf("<!-- unknown menu view %q -->", templ.EscapeString(v.Name)))
	}
}

func itemClass(v pkgmenu.View, base string) string {
	class := base
	if v.Active {
		class += " is-active"
	}
	if custom, ok := v.Attributes["class"].(string); ok {
		class = twmerge.Merge(class, custom)
	}
	return class
}

func customAttrs(v pkgmenu.View) g.Node {
	attrs := templ.Attributes{}
	for k, val := range v.Attributes {
		if k != "class" {
			attrs[k] = val
		}
	}
	return actionbutton.Attrs(attrs)
}

// Group renders the menu.group view: a toggle with the nested items. Top
// mode groups open as a dropdown.
func Group(ctx context.Context, v pkgmenu.View) g.Node {
	base := "menu-group"
	if v.TopMode {
		base = "menu-group menu-group-top relative"
	}
	open := "false"
	if v.Active {
		open = "true"
	}
	return html.Li(
		html.Class(itemClass(v, base)),
		g.Attr("x-data", "{ open: "+open+" }"),
		customAttrs(v),
		html.Button(
			html.Type("button"),
			html.Class("menu-group-toggle flex items-center gap-2 w-full"),
			g.Attr("@click", "open = !open"),
			g.Attr("aria-expanded", open),
			component(ctx, v.Icon.Component(6)),
			html.Span(g.Text(v.Label)),
		),
		html.Ul(
			html.Class("menu-group-items"),
			g.Attr("x-show", "open"),
			Views(ctx, v.Children),
		),
	)
}

// Item renders the menu.item view around the item action button.
func Item(ctx context.Context, v pkgmenu.View) g.Node {
	var link g.Node = g.Text(v.Label)
	if b, ok := v.Data["actionButton"].(*actionbutton.Button); ok {
		link = component(ctx, b)
	}
	return html.Li(
		html.Class(itemClass(v, "menu-item")),
		customAttrs(v),
		g.If(v.Active, g.Attr("aria-current", "page")),
		link,
	)
}

// ItemLink renders the menu.item-link button view: icon, label and badge.
// Outside top mode the label doubles as a tooltip for the collapsed sidebar.
func ItemLink(ctx context.Context, b *actionbutton.Button) g.Node {
	data := b.ViewData()
	label, _ := data["label"].(string)
	url, _ := data["url"].(string)
	badge, _ := data["badge"].(string)
	top, _ := data["top"].(bool)

	nodes := []g.Node{
		html.Href(url),
		html.Class(b.Class() + " menu-item-link flex items-center gap-2"),
		actionbutton.Attrs(b.Attributes()),
	}
	if ic, ok := data["icon"].(templ.Component); ok {
		nodes = append(nodes, component(ctx, ic))
	}
	nodes = append(nodes, html.Span(html.Class("menu-item-label"), g.Text(label)))
	if badge != "" {
		nodes = append(nodes, html.Span(html.Class("menu-item-badge badge"), g.Text(badge)))
	}
	if !top {
		nodes = append(nodes, html.Span(
			html.Class("menu-item-tooltip"),
			g.Attr("x-show", "tooltip"),
			g.Attr("x-cloak"),
			g.Text(label),
		))
	}
	return html.A(nodes...)
}

func menuClass(top bool) string {
	if top {
		return "menu menu-top flex items-center gap-4"
	}
	return "menu menu-sidebar flex flex-col gap-1"
}

// Render renders views as a complete navigation.
func Render(ctx context.Context, w io.Writer, views []pkgmenu.View, top bool) error {
	return html.Nav(
		html.Class(menuClass(top)),
		html.Ul(Views(ctx, views)),
	).Render(w)
}
