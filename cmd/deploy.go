package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"docs-deploy/internal/logger"
	"docs-deploy/internal/workflow"
)

// deployCmd publishes the documentation site to GitHub Pages. This is also
// what the bare `docs-deploy` invocation runs.
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy documentation to GitHub Pages",
	Args:  cobra.NoArgs,
	RunE:  runDeploy,
}

// runDeploy executes the deploy workflow: git guard, config validation, file
// staging, gh-deploy, and URL reporting. Declining the uncommitted-changes
// prompt cancels the run cleanly with exit code 0.
func runDeploy(cmd *cobra.Command, args []string) error {
	w, err := newWorkflow()
	if err != nil {
		return err
	}
	if err := w.Deploy(); err != nil {
		if errors.Is(err, workflow.ErrCancelled) {
			logger.Info("[INFO] Deployment cancelled.\n")
			return nil
		}
		return err
	}
	return nil
}
