package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"docs-deploy/internal/config"
	"docs-deploy/internal/logger"
)

// Stage copies the configured auxiliary documents into the docs/ subdirectory
// of the project root so they are picked up by the next build. Every entry is
// best-effort: a missing source or a failed copy produces a warning and the
// next entry is tried. Stage never fails the enclosing workflow.
func Stage(projectRoot string) {
	logger.Info("[INFO] Copying required files to docs directory...\n")

	docsDir := filepath.Join(projectRoot, "docs")

	for _, entry := range config.LoadStageEntries(projectRoot) {
		src := filepath.Join(projectRoot, entry.Source)
		dst := filepath.Join(docsDir, entry.Target)

		if _, err := os.Stat(src); err != nil {
			logger.Warn("[WARN] Source file not found: %s\n", src)
			continue
		}

		if err := copyFile(src, dst); err != nil {
			logger.Warn("[WARN] Failed to copy %s: %v\n", src, err)
			continue
		}
		logger.Info("[INFO] Copied %s to %s\n", src, dst)
	}
}

// copyFile copies a file from src to dst, preserving the source permissions.
// It creates any missing directories in the destination path.
// Returns an error if any step in the process fails.
func copyFile(src, dst string) (err error) {
	// Open the source file
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	// Ensure the destination directory exists
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	// Create the destination file with write permission (mode doesn't matter yet)
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	// A failed close means the copy may be incomplete, so it surfaces as
	// the function's error when nothing else failed first.
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	// Copy contents
	if _, cerr := io.Copy(out, in); cerr != nil {
		return fmt.Errorf("copy failed: %w", cerr)
	}

	// Preserve the source file mode on the copy
	if stat, serr := os.Stat(src); serr == nil {
		err = os.Chmod(dst, stat.Mode())
	}
	return err
}
