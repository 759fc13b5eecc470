package main

import (
	"docs-deploy/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The docs-deploy project automates building and publishing a MkDocs
// documentation site to GitHub Pages:
//   - Detects whether an isolated uv project (pyproject.toml + uv.lock) sits next
//     to the tool, and if so wraps every builder invocation in `uv run`
//   - Stages auxiliary project documents (changelog, contributing guide) into the
//     docs source tree before each build
//   - Validates the MkDocs configuration with a strict trial build before any
//     real deploy, so configuration errors fail fast
//   - Warns about uncommitted changes and asks for confirmation before publishing
//   - Publishes to the gh-pages branch via `mkdocs gh-deploy` and reports the
//     resulting GitHub Pages URL derived from the origin remote
//
// Error handling strategy:
//   - Advisory checks (git status, URL derivation, file staging) log warnings and
//     continue, so a best-effort safety net never blocks a deploy
//   - Precondition failures (missing config, failed validation, failed publish)
//     cause the program to exit with a non-zero status
//   - Declining the uncommitted-changes prompt cancels cleanly with exit code 0
//
// Integration points:
//   - Shells out to `mkdocs` (directly or through `uv run`) for build, serve,
//     and gh-deploy; exit codes are the only contract
//   - Shells out to `git` for the working-tree status and the origin remote URL
func main() {
	cmd.Execute()
}
