package cmd

import (
	"github.com/spf13/cobra"
)

// buildCmd builds the static site locally without publishing anything.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build documentation locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWorkflow()
		if err != nil {
			return err
		}
		return w.Build()
	},
}
