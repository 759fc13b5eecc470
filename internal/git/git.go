package git

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"docs-deploy/internal/logger"
	"docs-deploy/internal/runner"
)

// Prompter asks the operator a yes/no question and reports whether the answer
// was affirmative. Abstracted so tests can script responses without stdin.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// StdinPrompter reads the operator's answer from standard input.
// Only a "y" (case-insensitive) counts as yes; everything else, including an
// empty line or a read error, is treated as no.
type StdinPrompter struct{}

// Confirm prints the message and blocks until a line is read from stdin.
func (StdinPrompter) Confirm(message string) (bool, error) {
	fmt.Print(message)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// Guard checks the working tree for uncommitted changes before a deploy and
// asks the operator whether to continue when there are any. It returns false
// only when the operator explicitly declines; a failed status query (for
// example, not a git repository) warns and lets the deploy proceed, since
// this check is advisory rather than load-bearing.
func Guard(r runner.Runner, dir string, p Prompter) bool {
	out, err := r.Output(dir, "git", "status", "--porcelain")
	if err != nil {
		logger.Warn("[WARN] Could not check git status\n")
		return true
	}

	if strings.TrimSpace(out) == "" {
		return true
	}

	logger.Warn("[WARN] You have uncommitted changes. It's recommended to commit them before deploying docs.\n")
	ok, err := p.Confirm("Do you want to continue anyway? (y/N): ")
	if err != nil {
		// No usable answer means no consent to continue.
		return false
	}
	return ok
}

// RemoteURL returns the origin remote address of the repository at dir.
func RemoteURL(r runner.Runner, dir string) (string, error) {
	return r.Output(dir, "git", "config", "--get", "remote.origin.url")
}

// PagesURL derives the public GitHub Pages URL from an origin remote address.
// It strips an optional trailing .git, locates the github.com host marker,
// normalizes the SSH-style colon separator to a path separator, and splits
// the remainder into account and repository name. The second return value is
// false for remotes this derivation does not understand.
func PagesURL(remote string) (string, bool) {
	repoPath := strings.TrimSuffix(strings.TrimSpace(remote), ".git")

	const host = "github.com"
	idx := strings.Index(repoPath, host)
	if idx < 0 {
		return "", false
	}

	// Remainder after the host: "/user/repo" for HTTPS, ":user/repo" for SSH.
	rest := strings.ReplaceAll(repoPath[idx+len(host):], ":", "/")
	rest = strings.TrimPrefix(rest, "/")

	user, repo, found := strings.Cut(rest, "/")
	if !found || user == "" || repo == "" {
		return "", false
	}
	return fmt.Sprintf("https://%s.github.io/%s/", user, repo), true
}
