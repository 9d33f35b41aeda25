package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "wireframe",
		Short:         "Wireframe fabricates mock data and button styles for UI prototypes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a wireframe.yaml settings file")

	cmd.AddCommand(newFakeCmd(app))
	cmd.AddCommand(newClassesCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
