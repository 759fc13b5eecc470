package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStageEntriesDefaults(t *testing.T) {
	// No manifest: only the built-in changelog and contributing entries.
	entries := LoadStageEntries(t.TempDir())

	require.Len(t, entries, 2)
	assert.Equal(t, "CHANGELOG.md", entries[0].Source)
	assert.Equal(t, "changelog.md", entries[0].Target)
	assert.Equal(t, filepath.Join(".github", "CONTRIBUTING.md"), entries[1].Source)
	assert.Equal(t, "contributing.md", entries[1].Target)
}

func TestLoadStageEntriesWithManifest(t *testing.T) {
	root := t.TempDir()
	manifest := `stage:
  - source: ARCHITECTURE.md
    target: architecture.md
  - source: docs-src/faq.md
    target: faq.md
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs-deploy.yaml"), []byte(manifest), 0644))

	entries := LoadStageEntries(root)

	require.Len(t, entries, 4)
	assert.Equal(t, StageEntry{Source: "ARCHITECTURE.md", Target: "architecture.md"}, entries[2])
	assert.Equal(t, StageEntry{Source: "docs-src/faq.md", Target: "faq.md"}, entries[3])
}

func TestLoadStageEntriesSkipsIncompleteEntries(t *testing.T) {
	root := t.TempDir()
	manifest := `stage:
  - source: ARCHITECTURE.md
  - target: faq.md
  - source: README.md
    target: index.md
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs-deploy.yaml"), []byte(manifest), 0644))

	entries := LoadStageEntries(root)

	require.Len(t, entries, 3)
	assert.Equal(t, StageEntry{Source: "README.md", Target: "index.md"}, entries[2])
}

func TestLoadStageEntriesMalformedManifestIgnored(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs-deploy.yaml"), []byte("stage: [unclosed"), 0644))

	entries := LoadStageEntries(root)
	assert.Equal(t, DefaultStageEntries(), entries)
}

func TestCheckSiteConfig(t *testing.T) {
	// Advisory only: none of these may panic or fail, whatever the input.
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yml")
	require.NoError(t, os.WriteFile(valid, []byte("site_name: My Docs\nsite_url: https://docs.example.org\n"), 0644))
	CheckSiteConfig(valid)

	noName := filepath.Join(dir, "noname.yml")
	require.NoError(t, os.WriteFile(noName, []byte("theme: material\n"), 0644))
	CheckSiteConfig(noName)

	malformed := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(malformed, []byte("site_name: [unclosed"), 0644))
	CheckSiteConfig(malformed)

	CheckSiteConfig(filepath.Join(dir, "missing.yml"))
}
