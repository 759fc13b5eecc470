package cmd

import (
	"github.com/spf13/cobra"

	"docs-deploy/internal/logger"
)

// serveCmd runs the local preview server. `preview` is accepted as a synonym.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"preview"},
	Short:   "Serve documentation locally for preview",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWorkflow()
		if err != nil {
			return err
		}
		logger.Info("[INFO] Starting local documentation server for preview...\n")
		return w.Serve()
	},
}
