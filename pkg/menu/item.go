package menu

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/iota-uz/iota-menu/components/actionbutton"
	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/lazy"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// ActivePredicate overrides the default active-route rule of an item. path
// and host are parsed from the item URL.
type ActivePredicate func(pc types.PageContextProvider, path, host string, item *Item) bool

// ItemOption configures an item at construction time.
type ItemOption func(item *Item)

// WithIcon sets the item icon.
func WithIcon(ic icon.Icon) ItemOption {
	return func(item *Item) {
		item.icon = ic
	}
}

// WithBlank opens the item target in a new browsing context.
func WithBlank(blank bool) ItemOption {
	return func(item *Item) {
		item.blank = blank
	}
}

// Item is a leaf of the menu tree linking to a URL or a Filler.
type Item struct {
	element

	url        lazy.Value[string]
	filler     Filler
	badge      lazy.Value[string]
	blank      bool
	whenActive ActivePredicate
	button     *actionbutton.Button
}

// NewItem creates an item. When target is a Filler its badge and icon are
// adopted; an icon passed through WithIcon takes precedence.
func NewItem(label string, target Target, opts ...ItemOption) *Item {
	item := &Item{
		element: newElement(lazy.Of(label)),
		button:  actionbutton.New(label),
	}
	if target != nil {
		target.apply(item)
	}
	for _, opt := range opts {
		opt(item)
	}
	item.resolveFiller()
	return item
}

// LabelFunc replaces the label with a producer evaluated on every read.
func (i *Item) LabelFunc(fn func() (string, error)) *Item {
	i.label = lazy.FromE(fn)
	return i
}

// Translated marks the label as an i18n message ID.
func (i *Item) Translated() *Item {
	i.translated = true
	return i
}

func (i *Item) SetIcon(ic icon.Icon) *Item {
	i.icon = ic
	return i
}

// CanSee sets the visibility predicate.
func (i *Item) CanSee(fn func(pc types.PageContextProvider) bool) *Item {
	i.canSee = fn
	return i
}

// RequireAuthz hides the item unless the page authz state grants object/action.
func (i *Item) RequireAuthz(object, action string) *Item {
	i.requireAuthz(object, action)
	return i
}

// TopMode renders the item in top mode while cond holds.
func (i *Item) TopMode(cond TopModeCondition) *Item {
	i.setTopMode(cond)
	return i
}

func (i *Item) WithAttributes(attrs templ.Attributes) *Item {
	i.mergeAttributes(attrs)
	return i
}

func (i *Item) IsTopMode() bool {
	return i.isTopMode(i)
}

func (i *Item) ViewName() string {
	return ItemView
}

// Filler returns the filler the item was built from, nil for URL targets.
func (i *Item) Filler() Filler {
	return i.filler
}

// SetURL replaces the target URL and the blank flag.
func (i *Item) SetURL(target string, blank bool) *Item {
	i.url = lazy.Of(target)
	i.blank = blank
	return i
}

// URL resolves the target URL, "" when none is set.
func (i *Item) URL() (string, error) {
	return i.url.Get()
}

// SetBadge installs a badge producer.
func (i *Item) SetBadge(fn func() string) *Item {
	i.badge = lazy.From(fn)
	return i
}

func (i *Item) HasBadge() bool {
	return i.badge.IsSet()
}

func (i *Item) Badge() (string, error) {
	return i.badge.Get()
}

func (i *Item) Blank(blank bool) *Item {
	i.blank = blank
	return i
}

// BlankWhen evaluates cond against the item right away. A condition that
// reports no value (ok == false) marks the item blank.
func (i *Item) BlankWhen(cond func(item *Item) (blank bool, ok bool)) *Item {
	blank, ok := cond(i)
	i.blank = blank || !ok
	return i
}

func (i *Item) IsBlank() bool {
	return i.blank
}

// WhenActive replaces the default active-route rule.
func (i *Item) WhenActive(fn ActivePredicate) *Item {
	i.whenActive = fn
	return i
}

// ChangeButton replaces the action button with the result of fn.
func (i *Item) ChangeButton(fn func(b *actionbutton.Button) *actionbutton.Button) *Item {
	if b := fn(i.button); b != nil {
		i.button = b
	}
	return i
}

// IsActive reports whether the item points at the current page. Without a
// page context nothing is active.
//
// Items built from a Filler delegate to it. Otherwise an absolute root URL
// on the request host is active on the root path only, the home endpoint
// must match exactly and any other URL is active when the current URL
// contains it. Relative root and empty URLs therefore match every page;
// use ActiveExact or ActiveOnPrefix to narrow them.
func (i *Item) IsActive(pc types.PageContextProvider) (bool, error) {
	if pc == nil {
		return false, nil
	}
	if i.filler != nil {
		return i.filler.IsActive(pc), nil
	}

	target, err := i.URL()
	if err != nil {
		return false, err
	}
	path, host := splitURL(target)

	if i.whenActive != nil {
		return i.whenActive(pc, path, host, i), nil
	}
	if path == "/" && host == pc.Host() {
		return pc.Path() == "/", nil
	}
	if target == pc.HomeURL() {
		return pc.URLIs(target), nil
	}
	return pc.URLIs("*" + target + "*"), nil
}

// splitURL returns the path and host of raw. Malformed input yields empty
// values; a non-empty URL without a path has the root path.
func splitURL(raw string) (path, host string) {
	if raw == "" {
		return "", ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", ""
	}
	path = u.Path
	if path == "" {
		path = "/"
	}
	return path, u.Hostname()
}

// Button returns the action button prepared for rendering: blank items get
// a new-context target and items outside top mode get tooltip triggers.
func (i *Item) Button() *actionbutton.Button {
	b := i.button.Clone()
	if i.IsBlank() {
		b.CustomAttributes(templ.Attributes{"target": "_blank"})
	}
	if !i.IsTopMode() {
		b.CustomAttributes(templ.Attributes{
			"x-data":      "navTooltip",
			"@mouseenter": "toggleTooltip",
		})
	}
	return b
}

// ViewData exposes url, badge (when shown) and the configured actionButton.
func (i *Item) ViewData(pc types.PageContextProvider) (ViewData, error) {
	target, err := i.URL()
	if err != nil {
		return nil, fmt.Errorf("menu item url: %w", err)
	}
	label, err := i.Label(pc)
	if err != nil {
		return nil, fmt.Errorf("menu item label: %w", err)
	}

	data := ViewData{"url": target}
	badge := ""
	if i.HasBadge() {
		b, err := i.Badge()
		if err != nil {
			return nil, fmt.Errorf("menu item badge: %w", err)
		}
		if showBadge(b) {
			badge = b
			data["badge"] = b
		}
	}

	top := i.IsTopMode()
	data["actionButton"] = i.Button().
		SetLabel(label).
		SetURL(target).
		CustomView(ItemLinkView, map[string]any{
			"url":   target,
			"label": label,
			"icon":  i.icon.Component(6),
			"top":   top,
			"badge": badge,
		})
	return data, nil
}

func showBadge(b string) bool {
	return b != "" && b != "0"
}

func (i *Item) clone() Element {
	c := *i
	c.element = i.element.copy()
	c.button = i.button.Clone()
	return &c
}
