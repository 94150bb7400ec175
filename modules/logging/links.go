package logging

import (
	"strconv"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/modules/logging/services"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

var LogsObject = authz.ObjectName("logging", "logs")

// LogsPage fills the logs menu item and badges it with the number of
// errors logged since the counter was last reset.
type LogsPage struct {
	BasePath string
	Counter  *services.ErrorCounter
}

func (p LogsPage) URL() (string, error) {
	return p.BasePath, nil
}

func (p LogsPage) IsActive(pc types.PageContextProvider) bool {
	return routing.HasPathPrefixOnBoundary(pc.Path(), p.BasePath)
}

func (p LogsPage) Badge() string {
	if p.Counter == nil {
		return ""
	}
	return strconv.Itoa(p.Counter.Count())
}

func (p LogsPage) MenuIcon() icon.Icon {
	return icon.New("list")
}

func LogsLink(page LogsPage) *menu.Item {
	return menu.NewItem("NavigationLinks.Logs", menu.Fill(page)).
		Translated().
		RequireAuthz(LogsObject, "view")
}
