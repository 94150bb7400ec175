package menu

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// Elements is an ordered collection of menu elements.
type Elements []Element

// TopMode returns a copy of the tree where every element, nested ones
// included, renders in top mode under cond. The receiver is not modified.
func (e Elements) TopMode(cond TopModeCondition) Elements {
	out := make(Elements, 0, len(e))
	for _, el := range e {
		c := el.clone()
		if g, ok := c.(*Group); ok {
			g.items = g.Items().TopMode(cond)
		}
		c.base().setTopMode(cond)
		out = append(out, c)
	}
	return out
}

// OnlyVisible returns the elements visible for pc. Groups are rebuilt with
// their visible children; a group is kept by its own predicate even when
// none of its children are visible.
func (e Elements) OnlyVisible(pc types.PageContextProvider) Elements {
	out := make(Elements, 0, len(e))
	for _, el := range e {
		switch v := el.(type) {
		case *Group:
			g := v.clone().(*Group)
			g.items = v.Items().OnlyVisible(pc)
			if g.IsSee(pc) {
				out = append(out, g)
			}
		case *Item:
			if v.IsSee(pc) {
				out = append(out, v)
			}
		}
	}
	return out
}

// WithoutEmptyGroups drops groups that have no items left, recursively.
func (e Elements) WithoutEmptyGroups() Elements {
	out := make(Elements, 0, len(e))
	for _, el := range e {
		g, ok := el.(*Group)
		if !ok {
			out = append(out, el)
			continue
		}
		children := g.Items().WithoutEmptyGroups()
		if len(children) == 0 {
			continue
		}
		c := g.clone().(*Group)
		c.items = children
		out = append(out, c)
	}
	return out
}

// Flatten returns every item of the tree in depth-first order.
func (e Elements) Flatten() []*Item {
	var out []*Item
	for _, el := range e {
		switch v := el.(type) {
		case *Group:
			out = append(out, v.Items().Flatten()...)
		case *Item:
			out = append(out, v)
		}
	}
	return out
}

// AuthzRequirements lists the distinct capabilities required anywhere in
// the tree.
func (e Elements) AuthzRequirements() []authz.Capability {
	var caps []authz.Capability
	var walk func(Elements)
	walk = func(els Elements) {
		for _, el := range els {
			caps = append(caps, el.base().authz...)
			if g, ok := el.(*Group); ok {
				walk(g.Items())
			}
		}
	}
	walk(e)
	return lo.Uniq(caps)
}

// Active returns the first active element, nil when nothing is active.
func (e Elements) Active(pc types.PageContextProvider) (Element, error) {
	for _, el := range e {
		active, err := el.IsActive(pc)
		if err != nil {
			return nil, err
		}
		if active {
			return el, nil
		}
	}
	return nil, nil
}

// View is an element materialized for the template layer.
type View struct {
	Name       string
	Label      string
	Icon       icon.Icon
	Active     bool
	TopMode    bool
	Attributes templ.Attributes
	Data       ViewData
	Children   []View
}

// IsGroup reports whether the view was built from a Group.
func (v View) IsGroup() bool {
	return v.Name == GroupView
}

// Views materializes the collection. The first failing element aborts.
func (e Elements) Views(pc types.PageContextProvider) ([]View, error) {
	views := make([]View, 0, len(e))
	for _, el := range e {
		v, err := view(el, pc)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func view(el Element, pc types.PageContextProvider) (View, error) {
	label, err := el.Label(pc)
	if err != nil {
		return View{}, fmt.Errorf("menu label: %w", err)
	}
	active, err := el.IsActive(pc)
	if err != nil {
		return View{}, fmt.Errorf("menu %q active state: %w", label, err)
	}
	data, err := el.ViewData(pc)
	if err != nil {
		return View{}, fmt.Errorf("menu %q: %w", label, err)
	}
	v := View{
		Name:       el.ViewName(),
		Label:      label,
		Icon:       el.Icon(),
		Active:     active,
		TopMode:    el.IsTopMode(),
		Attributes: el.Attributes(),
		Data:       data,
	}
	if g, ok := el.(*Group); ok {
		if v.Children, err = g.Items().Views(pc); err != nil {
			return View{}, err
		}
	}
	return v, nil
}
