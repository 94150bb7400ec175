package modules

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/iota-menu/modules/core"
	"github.com/iota-uz/iota-menu/modules/hrm"
	"github.com/iota-uz/iota-menu/modules/logging"
	"github.com/iota-uz/iota-menu/pkg/application"
)

// BuiltInModules returns the modules shipped with the panel in menu order.
func BuiltInModules(logger *logrus.Logger) []application.Module {
	return []application.Module{
		core.NewModule(),
		hrm.NewModule(),
		logging.NewModule(&logging.ModuleOptions{Logger: logger}),
	}
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return fmt.Errorf("module %s: %w", module.Name(), err)
		}
	}
	return nil
}
