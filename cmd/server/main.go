package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/iota-menu/internal/server"
	"github.com/iota-uz/iota-menu/modules"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/configuration"
	"github.com/iota-uz/iota-menu/pkg/metrics"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		Bundle:             application.LoadBundle(),
		SupportedLanguages: conf.Languages(),
		HomePath:           conf.Menu.HomePath,
	})
	if err := modules.Load(app, modules.BuiltInModules(logger)...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	authzService := authz.Use()
	go reloadPolicyOnHangup(authzService, logger)

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Authz:         authzService,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	logger.WithField("menu-items", len(app.Menu().Flatten())).Info("modules loaded")
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// reloadPolicyOnHangup reloads the casbin policy file on SIGHUP so menu
// visibility follows policy edits without a restart.
func reloadPolicyOnHangup(svc *authz.Service, logger *logrus.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	for range hup {
		if err := svc.ReloadPolicy(context.Background()); err != nil {
			logger.WithError(err).Error("failed to reload authz policy")
		}
	}
}
