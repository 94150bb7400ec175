package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "menuctl",
		Short:        "Inspect the admin panel menu",
		SilenceUsage: true,
	}
	cmd.AddCommand(newShowCmd(), newRequirementsCmd())
	return cmd
}
