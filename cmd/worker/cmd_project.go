package main

import (
	"github.com/spf13/cobra"

	"github.com/portfolio-showcase/portfolio-api/internal/bootstrap"
)

var projectCmd = &cobra.Command{
	Use:   "project <id>",
	Short: "Print the detail record for one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.NewApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		detail, err := app.Loader.Project(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), detail)
	},
}
