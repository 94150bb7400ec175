package menu

import (
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// ActiveOnPrefix is an ActivePredicate that marks the item active on its
// own path and every path below it. The root path matches only itself.
func ActiveOnPrefix() ActivePredicate {
	return func(pc types.PageContextProvider, path, _ string, _ *Item) bool {
		if path == "" {
			return false
		}
		if path == "/" {
			return pc.Path() == "/"
		}
		return routing.HasPathPrefixOnBoundary(pc.Path(), path)
	}
}

// ActiveExact is an ActivePredicate that requires the current path to equal
// the item path.
func ActiveExact() ActivePredicate {
	return func(pc types.PageContextProvider, path, _ string, _ *Item) bool {
		return path != "" && pc.Path() == path
	}
}
