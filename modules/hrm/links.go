package hrm

import (
	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/routing"
	"github.com/iota-uz/iota-menu/pkg/types"
)

var EmployeesObject = authz.ObjectName("hrm", "employees")

// EmployeesPage fills the employees menu item: it owns its route and
// stays active on every employee sub-page.
type EmployeesPage struct {
	BasePath string
}

func (p EmployeesPage) URL() (string, error) {
	return p.BasePath, nil
}

func (p EmployeesPage) IsActive(pc types.PageContextProvider) bool {
	return routing.HasPathPrefixOnBoundary(pc.Path(), p.BasePath)
}

func (p EmployeesPage) MenuIcon() icon.Icon {
	return icon.New("users-three")
}

var employeesPage = EmployeesPage{BasePath: "/hrm/employees"}

func EmployeesLink() *menu.Item {
	return menu.NewItem("NavigationLinks.Employees", menu.Fill(employeesPage)).
		Translated().
		RequireAuthz(EmployeesObject, "list")
}

func HRMLink() *menu.Group {
	return menu.NewGroup("NavigationLinks.HRM", EmployeesLink()).
		Translated().
		SetIcon(icon.New("buildings"))
}

func NavItems() menu.Elements {
	return menu.Elements{HRMLink()}
}
