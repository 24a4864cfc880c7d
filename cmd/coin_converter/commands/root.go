package commands

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coin_converter",
		Short:         "Break amounts of cents into US bills and coins",
		SilenceUsage: true,
		// Running the binary without a subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(serveCmd(), convertCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
