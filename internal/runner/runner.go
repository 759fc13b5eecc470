package runner

import (
	"os"
	"os/exec"
	"strings"

	"docs-deploy/internal/logger"
)

// Runner abstracts external process invocation so workflows can be tested
// without touching real tooling. The working directory is an explicit
// parameter rather than mutated process state, keeping invocations composable.
type Runner interface {
	// Run executes name with args in dir (empty dir inherits the current
	// working directory). When stdio is true the child is wired to the
	// terminal, which long-running commands like a preview server need.
	// A non-zero exit is returned as an error.
	Run(dir string, stdio bool, name string, args ...string) error

	// Output executes name with args in dir and returns trimmed stdout.
	// Used for short queries such as git status and remote lookups.
	Output(dir, name string, args ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command, streaming output to the terminal when stdio is
// set and capturing it for diagnostics otherwise.
func (ExecRunner) Run(dir string, stdio bool, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	logger.Debug("[DEBUG] Running command: %s (dir=%q)\n", strings.Join(cmd.Args, " "), dir)

	if stdio {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	output, err := cmd.CombinedOutput()
	if err != nil && len(output) > 0 {
		// Surface the tool's own diagnostics; exit codes alone rarely
		// tell the operator what to fix.
		logger.Debug("[DEBUG] Command output:\n%s\n", output)
	}
	return err
}

// Output executes the command and returns its standard output with
// surrounding whitespace trimmed.
func (ExecRunner) Output(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	logger.Debug("[DEBUG] Running command: %s (dir=%q)\n", strings.Join(cmd.Args, " "), dir)

	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}
