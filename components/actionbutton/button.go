// Package actionbutton provides the link/button presentation object used by
// menu items and other page actions.
package actionbutton

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const defaultClass = "btn btn-sm"

// Button is a labelled link. Attributes are rendered on the anchor; a
// custom view replaces the default markup.
type Button struct {
	label    string
	url      string
	class    string
	attrs    templ.Attributes
	view     string
	viewData map[string]any
}

// New creates a button with the given label.
func New(label string) *Button {
	return &Button{
		label: label,
		class: defaultClass,
		attrs: templ.Attributes{},
	}
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

func (b *Button) URL() string {
	return b.url
}

func (b *Button) SetURL(url string) *Button {
	b.url = url
	return b
}

// Class returns the merged tailwind classes.
func (b *Button) Class() string {
	return b.class
}

// CustomAttributes merges attrs into the button attributes. A "class"
// attribute is merged with the existing classes, later utilities win.
func (b *Button) CustomAttributes(attrs templ.Attributes) *Button {
	for k, v := range attrs {
		if k == "class" {
			b.class = twmerge.Merge(b.class, fmt.Sprint(v))
			continue
		}
		b.attrs[k] = v
	}
	return b
}

// Attributes returns a copy of the custom attributes.
func (b *Button) Attributes() templ.Attributes {
	return maps.Clone(b.attrs)
}

// CustomView renders the button with the named view registered through
// RegisterView instead of the default anchor.
func (b *Button) CustomView(name string, data map[string]any) *Button {
	b.view = name
	b.viewData = data
	return b
}

func (b *Button) View() string {
	return b.view
}

func (b *Button) ViewData() map[string]any {
	return b.viewData
}

// Clone returns an independent copy of the button.
func (b *Button) Clone() *Button {
	c := *b
	c.attrs = maps.Clone(b.attrs)
	if c.attrs == nil {
		c.attrs = templ.Attributes{}
	}
	c.viewData = maps.Clone(b.viewData)
	return &c
}

// Node returns the default gomponents markup of the button.
func (b *Button) Node(children ...g.Node) g.Node {
	nodes := []g.Node{html.Href(b.url), html.Class(b.class), Attrs(b.attrs)}
	if len(children) == 0 {
		children = []g.Node{g.Text(b.label)}
	}
	return html.A(append(nodes, children...)...)
}

// Render implements templ.Component.
func (b *Button) Render(ctx context.Context, w io.Writer) error {
	if b.view != "" {
		view, ok := lookupView(b.view)
		if !ok {
			return fmt.Errorf("actionbutton: view %q is not registered", b.view)
		}
		return view(ctx, b).Render(w)
	}
	return b.Node().Render(w)
}

// Attrs converts templ attributes into gomponents attributes. Boolean
// attributes are rendered without a value when true and omitted when false.
func Attrs(attrs templ.Attributes) g.Node {
	keys := slices.Sorted(maps.Keys(attrs))
	nodes := make([]g.Node, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				nodes = append(nodes, g.Attr(k))
			}
		default:
			nodes = append(nodes, g.Attr(k, fmt.Sprint(v)))
		}
	}
	return g.Group(nodes)
}

// ViewFunc builds the markup of a custom button view.
type ViewFunc func(ctx context.Context, b *Button) g.Node

var (
	viewsMu sync.RWMutex
	views   = map[string]ViewFunc{}
)

// RegisterView makes a custom view available under name.
func RegisterView(name string, fn ViewFunc) {
	viewsMu.Lock()
	defer viewsMu.Unlock()
	views[name] = fn
}

func lookupView(name string) (ViewFunc, bool) {
	viewsMu.RLock()
	defer viewsMu.RUnlock()
	fn, ok := views[name]
	return fn, ok
}
