package env

import (
	"os"
	"path/filepath"

	"docs-deploy/internal/logger"
)

// Marker files that identify an isolated uv project next to the tool.
// Both must be present: the manifest declares the pinned mkdocs dependency
// set, and the lock file proves `uv sync` can reproduce it exactly.
const (
	manifestFile = "pyproject.toml"
	lockFile     = "uv.lock"
)

// Environment describes where the tool is running and which invocation style
// the external builder needs. It is computed once per run and passed to every
// later step, so all commands in one invocation agree on paths and prefixes.
type Environment struct {
	// ToolDir is the directory containing this executable, the fixed
	// location inspected for the marker files.
	ToolDir string

	// Isolated is true when both marker files exist in ToolDir, meaning
	// mkdocs should be invoked through `uv run` with ToolDir as the
	// working directory instead of relying on a global install.
	Isolated bool
}

// Detect resolves the directory containing the running executable and checks
// it for the isolated-environment markers. Symlinks are resolved so that a
// tool invoked through a symlinked bin directory still finds its own markers.
func Detect() Environment {
	exe, err := os.Executable()
	if err != nil {
		// Without an executable path there is nowhere to look for
		// markers, so fall back to the global-tool mode.
		logger.Debug("[DEBUG] Could not resolve executable path: %v\n", err)
		return Environment{ToolDir: "."}
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return DetectAt(filepath.Dir(exe))
}

// DetectAt checks the given directory for the marker pair and returns the
// resulting Environment. Pure filesystem existence checks, no side effects.
func DetectAt(dir string) Environment {
	e := Environment{ToolDir: dir}
	e.Isolated = fileExists(filepath.Join(dir, manifestFile)) &&
		fileExists(filepath.Join(dir, lockFile))
	logger.Debug("[DEBUG] Environment detection in %s: isolated=%v\n", dir, e.Isolated)
	return e
}

// ConfigArg returns the --config-file argument string handed to mkdocs.
// In isolated mode commands run inside ToolDir, so the site config two levels
// up is addressed relatively; otherwise the config sits in the current directory.
func (e Environment) ConfigArg() string {
	if e.Isolated {
		return filepath.Join("..", "..", "mkdocs.yml")
	}
	return "mkdocs.yml"
}

// ConfigPath returns the filesystem path of the site configuration file,
// suitable for existence checks from the caller's working directory.
func (e Environment) ConfigPath() string {
	if e.Isolated {
		return filepath.Join(e.ToolDir, "..", "..", "mkdocs.yml")
	}
	return "mkdocs.yml"
}

// ProjectRoot returns the directory that holds the documentation sources and
// auxiliary project files: two levels above the tool directory in isolated
// mode, the current directory otherwise.
func (e Environment) ProjectRoot() string {
	if e.Isolated {
		return filepath.Join(e.ToolDir, "..", "..")
	}
	return "."
}

// RunDir returns the working directory external builder commands must run in.
// An empty string means "inherit the caller's working directory", which is
// the behavior wanted for a globally installed mkdocs.
func (e Environment) RunDir() string {
	if e.Isolated {
		return e.ToolDir
	}
	return ""
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
