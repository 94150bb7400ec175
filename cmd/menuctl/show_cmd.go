package main

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/modules"
	"github.com/iota-uz/iota-menu/pkg/application"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/configuration"
	"github.com/iota-uz/iota-menu/pkg/types"
)

type authzFlags struct {
	modelPath  string
	policyPath string
	mode       string
}

func (f *authzFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.modelPath, "model", "", "Casbin model path (default AUTHZ_MODEL_PATH)")
	cmd.Flags().StringVar(&f.policyPath, "policy", "", "Casbin policy path (default AUTHZ_POLICY_PATH)")
	cmd.Flags().StringVar(&f.mode, "mode", string(authz.ModeEnforce), "Authz mode: disabled, shadow or enforce")
}

func (f *authzFlags) service(conf *configuration.Configuration) (*authz.Service, error) {
	cfg := authz.Config{
		ModelPath:    conf.Authz.ModelPath,
		PolicyPath:   conf.Authz.PolicyPath,
		FlagProvider: authz.StaticFlags(authz.Mode(f.mode)),
		Logger:       conf.Logger(),
	}
	if f.modelPath != "" {
		cfg.ModelPath = f.modelPath
	}
	if f.policyPath != "" {
		cfg.PolicyPath = f.policyPath
	}
	return authz.NewService(cfg)
}

func loadApp(conf *configuration.Configuration) (application.Application, error) {
	app := application.New(&application.ApplicationOptions{
		SupportedLanguages: conf.Languages(),
		HomePath:           conf.Menu.HomePath,
	})
	if err := modules.Load(app, modules.BuiltInModules(conf.Logger())...); err != nil {
		return nil, err
	}
	return app, nil
}

func newShowCmd() *cobra.Command {
	var (
		af        authzFlags
		user      string
		rawURL    string
		lang      string
		top       bool
		hideEmpty bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the menu a user sees on a page",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := configuration.Parse()
			if err != nil {
				return err
			}
			app, err := loadApp(conf)
			if err != nil {
				return err
			}
			svc, err := af.service(conf)
			if err != nil {
				return err
			}
			u, err := url.Parse(rawURL)
			if err != nil {
				return fmt.Errorf("invalid --url: %w", err)
			}

			pc := &types.PageContext{
				Locale:    language.Make(lang),
				URL:       u,
				Localizer: i18n.NewLocalizer(app.Bundle(), lang),
				Endpoints: app.Endpoints(),
			}
			subject := authz.SubjectForUserID(uuid.Nil, user)
			caps := append(app.Menu().AuthzRequirements(), app.QuickLinks().AuthzRequirements()...)
			state, err := svc.Capabilities(cmd.Context(), subject, authz.DomainFromTenant(uuid.Nil), caps)
			if err != nil {
				return err
			}
			pc.SetAuthzState(state)

			els := app.Menu().OnlyVisible(pc)
			if hideEmpty {
				els = els.WithoutEmptyGroups()
			}
			if top {
				els = els.TopMode(nil)
			}
			views, err := els.Views(pc)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), nodes(views))
			}
			return writeTree(cmd.OutOrStdout(), nodes(views), 0)
		},
	}

	af.register(cmd)
	cmd.Flags().StringVar(&user, "user", "", "User identifier (anonymous when empty)")
	cmd.Flags().StringVar(&rawURL, "url", "http://localhost/", "Current page URL")
	cmd.Flags().StringVar(&lang, "lang", "en", "Locale")
	cmd.Flags().BoolVar(&top, "top", false, "Prepare the menu for the top bar")
	cmd.Flags().BoolVar(&hideEmpty, "hide-empty", false, "Drop groups without visible items")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a tree")
	return cmd
}

func newRequirementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requirements",
		Short: "List the capabilities the menu and quick links are gated by",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := configuration.Parse()
			if err != nil {
				return err
			}
			app, err := loadApp(conf)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string][]authz.Capability{
				"menu":       app.Menu().AuthzRequirements(),
				"quickLinks": app.QuickLinks().AuthzRequirements(),
			})
		},
	}
}
