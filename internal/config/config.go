package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"docs-deploy/internal/logger"
)

// manifestName is the optional staging manifest looked up at the project
// root. It lets a project stage extra documents into docs/ beyond the
// built-in changelog and contributing entries.
const manifestName = "docs-deploy.yaml"

// StageEntry is a single (source path, destination filename) pair. Source is
// relative to the project root, Target is the filename placed under docs/.
type StageEntry struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Manifest is the top-level structure of the optional docs-deploy.yaml file.
type Manifest struct {
	Stage []StageEntry `yaml:"stage"`
}

// DefaultStageEntries returns the auxiliary documents every project gets
// staged by default. Both are optional on disk; staging only warns when a
// source is missing.
func DefaultStageEntries() []StageEntry {
	return []StageEntry{
		{Source: "CHANGELOG.md", Target: "changelog.md"},
		{Source: filepath.Join(".github", "CONTRIBUTING.md"), Target: "contributing.md"},
	}
}

// LoadStageEntries returns the default staging entries plus any extras from
// the manifest at the given project root. A missing manifest is the normal
// case; a malformed one is reported as a warning and ignored so that staging
// stays advisory.
func LoadStageEntries(projectRoot string) []StageEntry {
	entries := DefaultStageEntries()

	path := filepath.Join(projectRoot, manifestName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("[WARN] Could not read %s: %v\n", path, err)
		}
		return entries
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		logger.Warn("[WARN] Ignoring malformed %s: %v\n", path, err)
		return entries
	}

	for _, e := range m.Stage {
		if e.Source == "" || e.Target == "" {
			logger.Warn("[WARN] Ignoring incomplete stage entry in %s (source=%q, target=%q)\n",
				path, e.Source, e.Target)
			continue
		}
		entries = append(entries, e)
	}
	logger.Debug("[DEBUG] Loaded %d staging entries (%d from %s)\n",
		len(entries), len(entries)-len(DefaultStageEntries()), path)
	return entries
}

// SiteConfig carries the handful of mkdocs.yml fields the tool sanity-checks
// before handing validation over to the strict trial build.
type SiteConfig struct {
	SiteName string `yaml:"site_name"`
	SiteURL  string `yaml:"site_url"`
}

// CheckSiteConfig parses the MkDocs configuration at path and warns about
// obvious gaps. MkDocs configs may use Python-specific YAML tags this parser
// cannot read, so a parse failure is only a warning — the strict build run by
// the validator is the authority on correctness.
func CheckSiteConfig(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		// Existence is the validator's fatal check; nothing to add here.
		return
	}

	var sc SiteConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		logger.Warn("[WARN] Could not parse %s (%v); deferring to the strict build\n", path, err)
		return
	}
	if sc.SiteName == "" {
		logger.Warn("[WARN] %s has no site_name set\n", path)
	}
	logger.Debug("[DEBUG] Site config %s: site_name=%q site_url=%q\n", path, sc.SiteName, sc.SiteURL)
}
