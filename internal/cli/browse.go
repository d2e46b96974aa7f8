package cli

import (
	"docadmin/internal/app"
	"docadmin/internal/console"
	"docadmin/internal/tui"

	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [project]",
		Short: "Page through a project's documents interactively",
		Long:  "Page through a project's documents interactively. Defaults to the demo project.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := app.DemoProject
			if len(args) == 1 {
				project = args[0]
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), client, project,
				console.WithTimeout(opts.client.Timeout))
		},
	}
}
