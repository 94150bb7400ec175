// Package icon resolves menu icon descriptors into renderable components.
package icon

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Icon describes an icon by name. Custom icons are rendered as images
// located at Path/Name instead of being looked up in the icon set.
type Icon struct {
	Name   string
	Custom bool
	Path   string
}

// New returns a named icon from the built-in set.
func New(name string) Icon {
	return Icon{Name: name}
}

// Custom returns an icon rendered from an image path.
func Custom(name, path string) Icon {
	return Icon{Name: name, Custom: true, Path: path}
}

func (i Icon) IsZero() bool {
	return i.Name == ""
}

var phosphor = map[string]func(icons.Props) templ.Component{
	"gauge":               icons.Gauge,
	"air-traffic-control": icons.AirTrafficControl,
	"users":               icons.Users,
	"users-three":         icons.UsersThree,
	"user-circle":         icons.UserCircle,
	"tree-structure":      icons.TreeStructure,
	"puzzle-piece":        icons.PuzzlePiece,
	"magnifying-glass":    icons.MagnifyingGlass,
	"list":                icons.List,
	"buildings":           icons.Buildings,
	"plus-circle":         icons.PlusCircle,
	"warning":             icons.Warning,
}

// Known reports whether name is part of the built-in icon set.
func Known(name string) bool {
	_, ok := phosphor[name]
	return ok
}

// Component renders the icon at size, given in spacing units of 4px
// (size 6 renders 24px). A zero Icon renders nothing.
func (i Icon) Component(size int) templ.Component {
	if i.IsZero() {
		return templ.NopComponent
	}
	px := strconv.Itoa(size * 4)
	if i.Custom {
		return customImage(i, px)
	}
	if fn, ok := phosphor[i.Name]; ok {
		return fn(icons.Props{Size: px})
	}
	return fallback(px)
}

func customImage(i Icon, px string) templ.Component {
	src := i.Name
	if i.Path != "" {
		src = i.Path + "/" + i.Name
	}
	return node(html.Img(html.Src(src), html.Width(px), html.Height(px), html.Alt("")))
}

func fallback(px string) templ.Component {
	return node(html.Span(
		html.Class("inline-flex items-center justify-center"),
		html.Style("width:"+px+"px;height:"+px+"px"),
		g.Text("\u2022"),
	))
}

func node(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
