package menu

import (
	"github.com/a-h/templ"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/lazy"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// Group is a labelled container of elements.
type Group struct {
	element

	items []Element
}

func NewGroup(label string, items ...Element) *Group {
	return &Group{
		element: newElement(lazy.Of(label)),
		items:   items,
	}
}

// SetItems replaces the group children.
func (g *Group) SetItems(items ...Element) *Group {
	g.items = items
	return g
}

// Items returns a new collection over the group children.
func (g *Group) Items() Elements {
	return append(Elements(nil), g.items...)
}

func (g *Group) LabelFunc(fn func() (string, error)) *Group {
	g.label = lazy.FromE(fn)
	return g
}

// Translated marks the label as an i18n message ID.
func (g *Group) Translated() *Group {
	g.translated = true
	return g
}

func (g *Group) SetIcon(ic icon.Icon) *Group {
	g.icon = ic
	return g
}

// CanSee sets the visibility predicate. It does not depend on children.
func (g *Group) CanSee(fn func(pc types.PageContextProvider) bool) *Group {
	g.canSee = fn
	return g
}

func (g *Group) RequireAuthz(object, action string) *Group {
	g.requireAuthz(object, action)
	return g
}

// TopMode renders the group in top mode while cond holds. Children are
// not affected, see Elements.TopMode.
func (g *Group) TopMode(cond TopModeCondition) *Group {
	g.setTopMode(cond)
	return g
}

func (g *Group) WithAttributes(attrs templ.Attributes) *Group {
	g.mergeAttributes(attrs)
	return g
}

func (g *Group) IsTopMode() bool {
	return g.isTopMode(g)
}

func (g *Group) ViewName() string {
	return GroupView
}

// IsActive reports whether any descendant item is active. An empty group
// is never active.
func (g *Group) IsActive(pc types.PageContextProvider) (bool, error) {
	for _, el := range g.items {
		active, err := el.IsActive(pc)
		if err != nil {
			return false, err
		}
		if active {
			return true, nil
		}
	}
	return false, nil
}

func (g *Group) ViewData(_ types.PageContextProvider) (ViewData, error) {
	return ViewData{"items": g.Items()}, nil
}

func (g *Group) clone() Element {
	c := *g
	c.element = g.element.copy()
	c.items = g.Items()
	return &c
}
