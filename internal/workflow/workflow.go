package workflow

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"docs-deploy/internal/env"
	"docs-deploy/internal/git"
	"docs-deploy/internal/logger"
	"docs-deploy/internal/mkdocs"
	"docs-deploy/internal/runner"
	"docs-deploy/internal/staging"
)

// ErrCancelled is returned when the operator declines to continue at the
// uncommitted-changes prompt. It is not a failure: the CLI maps it to a
// friendly message and a zero exit code.
var ErrCancelled = errors.New("deployment cancelled")

// Workflow carries everything the three top-level workflows need: the
// detected environment, the process runner, the builder client, and the
// prompter used for interactive confirmation. Each run constructs exactly one
// Workflow, so all steps share the same environment decision.
type Workflow struct {
	Env      env.Environment
	Runner   runner.Runner
	Docs     *mkdocs.Client
	Prompter git.Prompter

	// sig receives operator interrupts during serve. Left nil in
	// production and wired to signal.Notify on first use; tests may
	// pre-fill it with a pending signal.
	sig chan os.Signal
}

// New assembles a production Workflow for the given environment.
func New(e env.Environment) *Workflow {
	r := runner.ExecRunner{}
	return &Workflow{
		Env:      e,
		Runner:   r,
		Docs:     mkdocs.New(e, r),
		Prompter: git.StdinPrompter{},
	}
}

// Deploy publishes the documentation site to GitHub Pages: git guard, strict
// config validation, file staging, then the clean gh-deploy invocation. On
// success it reports the derived public URL (best effort) and the usual
// propagation delay.
func (w *Workflow) Deploy() error {
	logger.Info("[INFO] Deploying documentation to GitHub Pages...\n")

	if !git.Guard(w.Runner, w.Env.ProjectRoot(), w.Prompter) {
		return ErrCancelled
	}

	if err := w.Docs.Validate(); err != nil {
		return err
	}

	staging.Stage(w.Env.ProjectRoot())

	logger.Info("[INFO] Building and deploying documentation to GitHub Pages...\n")
	if err := w.Docs.Deploy(); err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}

	logger.Info("[INFO] Documentation deployed successfully!\n")
	w.reportPagesURL()
	logger.Info("[INFO] Note: It may take a few minutes for changes to appear on GitHub Pages.\n")
	return nil
}

// reportPagesURL prints the public site address derived from the origin
// remote. Any failure here is silently swallowed: the deploy already
// succeeded and the URL line is a convenience, not a result.
func (w *Workflow) reportPagesURL() {
	remote, err := git.RemoteURL(w.Runner, w.Env.ProjectRoot())
	if err != nil {
		logger.Debug("[DEBUG] Could not query origin remote: %v\n", err)
		return
	}
	url, ok := git.PagesURL(remote)
	if !ok {
		logger.Debug("[DEBUG] Remote %q is not a GitHub address\n", remote)
		return
	}
	logger.Info("[INFO] Your documentation will be available at:\n")
	fmt.Printf("  %s\n", url)
}

// Serve runs the local preview server in the foreground until the operator
// interrupts it. The interrupt is the normal way to stop a preview, so it is
// converted into a clean return rather than an error.
func (w *Workflow) Serve() error {
	logger.Info("[INFO] Starting local documentation server...\n")
	logger.Info("[INFO] Documentation will be available at: http://127.0.0.1:8000\n")
	logger.Info("[INFO] Press Ctrl+C to stop the server\n")

	if w.sig == nil {
		w.sig = make(chan os.Signal, 1)
		signal.Notify(w.sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(w.sig)
	}

	err := w.Docs.Serve()

	// The terminal delivers Ctrl+C to the whole process group, so the
	// server exits with a signal status while we receive the interrupt
	// here. That combination is a clean stop, not a failure.
	select {
	case <-w.sig:
		logger.Info("[INFO] Server stopped.\n")
		return nil
	default:
	}

	if err != nil {
		return fmt.Errorf("preview server failed: %w", err)
	}
	logger.Info("[INFO] Server stopped.\n")
	return nil
}

// Build produces the static site locally: file staging, strict validation,
// then a plain build reporting the output location.
func (w *Workflow) Build() error {
	staging.Stage(w.Env.ProjectRoot())

	if err := w.Docs.Validate(); err != nil {
		return err
	}

	if err := w.Docs.Build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info("[INFO] Documentation built in site/ directory\n")
	return nil
}
