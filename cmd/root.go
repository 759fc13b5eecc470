package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"docs-deploy/internal/env"
	"docs-deploy/internal/logger"
	"docs-deploy/internal/mkdocs"
	"docs-deploy/internal/workflow"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `docs-deploy`.
// Running it without a subcommand performs the default deploy workflow.
var rootCmd = &cobra.Command{
	Use:   "docs-deploy",
	Short: "Build and publish the MkDocs documentation site to GitHub Pages",
	Long: `docs-deploy builds, previews, and publishes the project documentation.

Commands:
  deploy    Deploy documentation to GitHub Pages (default)
  serve     Serve documentation locally for preview
  build     Build documentation locally

This tool uses uv (https://github.com/astral-sh/uv) for package management
when a pyproject.toml and uv.lock pair sits next to the binary; otherwise a
globally installed mkdocs is used.`,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
		logger.Info("[INFO] Documentation Deployment\n")
		logger.Info("[INFO] ========================================\n")
	},

	// Deploy is the default workflow when no subcommand is given.
	RunE: runDeploy,

	// Errors are reported once, with the logger's label convention,
	// in Execute below.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// init registers the global --debug flag and the subcommands.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buildCmd)
}

// Execute starts the command execution. It's the entry point for the CLI when
// invoked by the user. Any error from a workflow terminates the process with
// a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// newWorkflow detects the environment and verifies the external builder can
// be invoked at all. Without either a mkdocs binary on PATH or an isolated
// uv project next to the tool, no workflow can run.
func newWorkflow() (*workflow.Workflow, error) {
	e := env.Detect()
	if !e.Isolated && !mkdocs.Available() {
		logger.Error("[ERROR] MkDocs not found and no uv project detected.\n")
		return nil, errors.New("please run 'uv sync' next to the docs-deploy binary first")
	}
	return workflow.New(e), nil
}
