package mkdocs

import (
	"fmt"
	"os"
	"os/exec"

	"docs-deploy/internal/config"
	"docs-deploy/internal/env"
	"docs-deploy/internal/logger"
	"docs-deploy/internal/runner"
)

// Client invokes the external MkDocs builder. Depending on the detected
// environment, every invocation is either the global `mkdocs` binary run in
// the caller's working directory, or `uv run mkdocs` run inside the tool
// directory so uv picks up the pinned project there.
type Client struct {
	Env    env.Environment
	Runner runner.Runner
}

// New returns a Client bound to the given environment and process runner.
func New(e env.Environment, r runner.Runner) *Client {
	return &Client{Env: e, Runner: r}
}

// Available reports whether the mkdocs binary can be invoked directly.
// In isolated mode this check is irrelevant, since uv resolves the tool.
func Available() bool {
	_, err := exec.LookPath("mkdocs")
	return err == nil
}

// Run executes a mkdocs subcommand with the invocation style the environment
// requires. When stdio is set the child process is attached to the terminal,
// which the preview server needs. A non-zero exit propagates as an error.
func (c *Client) Run(stdio bool, args ...string) error {
	if c.Env.Isolated {
		wrapped := append([]string{"run", "mkdocs"}, args...)
		return c.Runner.Run(c.Env.RunDir(), stdio, "uv", wrapped...)
	}
	return c.Runner.Run("", stdio, "mkdocs", args...)
}

// Validate confirms the site configuration is usable before a real build or
// deploy. A missing config file is fatal to the caller: every later step
// depends on it. Otherwise a strict, quiet trial build is run; any failure
// means the configuration has errors the operator must fix first.
func (c *Client) Validate() error {
	logger.Info("[INFO] Validating MkDocs configuration...\n")

	cfgPath := c.Env.ConfigPath()
	if _, err := os.Stat(cfgPath); err != nil {
		return fmt.Errorf("mkdocs.yml not found at %s", cfgPath)
	}

	// Advisory sanity parse; the strict build below is the authority.
	config.CheckSiteConfig(cfgPath)

	if err := c.Run(false, "build", "--strict", "--quiet", "--config-file", c.Env.ConfigArg()); err != nil {
		return fmt.Errorf("mkdocs build failed, please fix configuration errors: %w", err)
	}

	logger.Info("[INFO] MkDocs configuration is valid\n")
	return nil
}

// Build runs a plain site build with the environment's config file.
func (c *Client) Build() error {
	return c.Run(false, "build", "--config-file", c.Env.ConfigArg())
}

// Serve runs the foreground preview server. It blocks until the server
// process exits; the caller decides how to treat an operator interrupt.
func (c *Client) Serve() error {
	return c.Run(true, "serve", "--config-file", c.Env.ConfigArg())
}

// Deploy publishes the site to the gh-pages branch. The --clean flag removes
// stale files from previous builds, and mkdocs substitutes the current commit
// hash for {sha} in the commit message template.
func (c *Client) Deploy() error {
	return c.Run(false, "gh-deploy", "--clean",
		"--message", "Deploy documentation for commit {sha}",
		"--config-file", c.Env.ConfigArg())
}
