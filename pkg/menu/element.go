// Package menu models the admin-panel navigation tree: items, groups and the
// collection-wide transformations applied before rendering.
package menu

import (
	"maps"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/lazy"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// View names consumed by the template layer.
const (
	ItemView     = "menu.item"
	GroupView    = "menu.group"
	ItemLinkView = "menu.item-link"
)

// ViewData is the element specific data handed to a named view.
type ViewData map[string]any

// TopModeCondition decides whether an element renders in top mode.
// A nil condition means always.
type TopModeCondition func(el Element) bool

// Element is a node of the menu tree. It is implemented by *Item and *Group only.
type Element interface {
	Label(pc types.PageContextProvider) (string, error)
	Icon() icon.Icon
	Attributes() templ.Attributes
	IsSee(pc types.PageContextProvider) bool
	IsActive(pc types.PageContextProvider) (bool, error)
	IsTopMode() bool
	ViewName() string
	ViewData(pc types.PageContextProvider) (ViewData, error)

	base() *element
	clone() Element
}

type element struct {
	label      lazy.Value[string]
	translated bool
	icon       icon.Icon
	attrs      templ.Attributes
	canSee     func(pc types.PageContextProvider) bool
	authz      []authz.Capability
	topMode    bool
	topModeIf  TopModeCondition
}

func newElement(label lazy.Value[string]) element {
	return element{label: label, attrs: templ.Attributes{}}
}

func (e *element) base() *element {
	return e
}

func (e *element) copy() element {
	c := *e
	c.attrs = maps.Clone(e.attrs)
	c.authz = append([]authz.Capability(nil), e.authz...)
	return c
}

// Label resolves the element label. Translated labels are message IDs looked
// up through the page context; a missing translation yields the ID itself.
func (e *element) Label(pc types.PageContextProvider) (string, error) {
	label, err := e.label.Get()
	if err != nil {
		return "", err
	}
	if !e.translated || pc == nil {
		return label, nil
	}
	if tr := pc.TSafe(label); tr != "" {
		return tr, nil
	}
	return label, nil
}

func (e *element) Icon() icon.Icon {
	return e.icon
}

func (e *element) Attributes() templ.Attributes {
	return maps.Clone(e.attrs)
}

// IsSee reports whether the element is visible for the request. Every
// required capability must be granted and the CanSee predicate, when set,
// must pass.
func (e *element) IsSee(pc types.PageContextProvider) bool {
	for _, c := range e.authz {
		if pc == nil || !pc.CanAuthz(c.Object, c.Action) {
			return false
		}
	}
	if e.canSee == nil {
		return true
	}
	return e.canSee(pc)
}

func (e *element) setTopMode(cond TopModeCondition) {
	e.topMode = true
	e.topModeIf = cond
}

func (e *element) isTopMode(self Element) bool {
	if !e.topMode {
		return false
	}
	if e.topModeIf == nil {
		return true
	}
	return e.topModeIf(self)
}

func (e *element) requireAuthz(object, action string) {
	c := authz.Capability{Object: object, Action: authz.NormalizeAction(action)}
	for _, existing := range e.authz {
		if existing == c {
			return
		}
	}
	e.authz = append(e.authz, c)
}

func (e *element) mergeAttributes(attrs templ.Attributes) {
	for k, v := range attrs {
		if k == "class" {
			prev, _ := e.attrs[k].(string)
			next, _ := v.(string)
			e.attrs[k] = twmerge.Merge(prev, next)
			continue
		}
		e.attrs[k] = v
	}
}
