package menu

import (
	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/lazy"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// Filler supplies an item's URL and active state from a domain object,
// e.g. a resource page that knows its own route.
type Filler interface {
	URL() (string, error)
	IsActive(pc types.PageContextProvider) bool
}

// BadgeFiller is implemented by fillers that provide a badge for the item.
type BadgeFiller interface {
	Badge() string
}

// IconFiller is implemented by fillers that declare a default icon.
type IconFiller interface {
	MenuIcon() icon.Icon
}

// Target is what an item links to: a URL, a URL producer or a Filler.
type Target interface {
	apply(item *Item)
}

// URL is a literal link target.
type URL string

func (u URL) apply(item *Item) {
	item.url = lazy.Of(string(u))
}

// URLFunc is a link target computed on every read.
type URLFunc func() (string, error)

func (f URLFunc) apply(item *Item) {
	item.url = lazy.FromE(f)
}

type fillTarget struct {
	filler Filler
}

// Fill links an item to a Filler.
func Fill(f Filler) Target {
	return fillTarget{filler: f}
}

func (t fillTarget) apply(item *Item) {
	item.filler = t.filler
	if t.filler != nil {
		item.url = lazy.FromE(t.filler.URL)
	}
}

// resolveFiller adopts the optional badge and icon of the filler. It runs
// after options so an explicit icon wins over the filler's.
func (i *Item) resolveFiller() {
	if i.filler == nil {
		return
	}
	if bf, ok := i.filler.(BadgeFiller); ok {
		i.badge = lazy.From(bf.Badge)
	}
	if inf, ok := i.filler.(IconFiller); ok && i.icon.IsZero() {
		i.icon = inf.MenuIcon()
	}
}
