// Package testing provides catalog scaffolding helpers for pipecheck tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/obslab/pipecheck/config"
)

// Tree is a temporary on-disk integration catalog plus pipeline catalog.
// All files live under t.TempDir(), so cleanup is automatic.
type Tree struct {
	IntegrationsRoot string
	PipelinesRoot    string
}

// NewTree creates an empty catalog tree.
func NewTree(t *testing.T) *Tree {
	t.Helper()

	root := t.TempDir()
	tree := &Tree{
		IntegrationsRoot: filepath.Join(root, "integrations"),
		PipelinesRoot:    filepath.Join(root, "pipelines"),
	}
	for _, dir := range []string{tree.IntegrationsRoot, tree.PipelinesRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return tree
}

// Config returns a Config pointing at the tree's roots.
func (tr *Tree) Config() *config.Config {
	return &config.Config{
		PipelinesRoot:    tr.PipelinesRoot,
		IntegrationsRoot: tr.IntegrationsRoot,
	}
}

// AddIntegration writes <dir>/manifest.yaml and, if readme is non-empty,
// <dir>/README.md.
func (tr *Tree) AddIntegration(t *testing.T, dir, manifestYAML, readme string) {
	t.Helper()

	path := filepath.Join(tr.IntegrationsRoot, dir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("Failed to create integration dir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(path, "manifest.yaml"), []byte(manifestYAML), 0o644); err != nil {
		t.Fatalf("Failed to write manifest for %s: %v", dir, err)
	}
	if readme != "" {
		if err := os.WriteFile(filepath.Join(path, "README.md"), []byte(readme), 0o644); err != nil {
			t.Fatalf("Failed to write README for %s: %v", dir, err)
		}
	}
}

// AddDir creates a bare integration directory with no manifest.
func (tr *Tree) AddDir(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(tr.IntegrationsRoot, dir), 0o755); err != nil {
		t.Fatalf("Failed to create dir %s: %v", dir, err)
	}
}

// AddPipeline writes one pipeline definition file.
func (tr *Tree) AddPipeline(t *testing.T, filename, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(tr.PipelinesRoot, filename), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write pipeline %s: %v", filename, err)
	}
}

// Manifest renders a minimal manifest.yaml.
func Manifest(name, integrationID string, categories ...string) string {
	out := fmt.Sprintf("name: %s\nintegration_id: %s\n", name, integrationID)
	if len(categories) > 0 {
		out += "categories:\n"
		for _, c := range categories {
			out += fmt.Sprintf("  - %q\n", c)
		}
	}
	return out
}

// ReadmeWithSources renders documentation declaring the given sources inside
// one fenced block, in bare YAML form.
func ReadmeWithSources(sources ...string) string {
	body := "## Log collection\n\n```yaml\nlogs:\n"
	for _, s := range sources {
		body += fmt.Sprintf("  - type: file\n    source: %s\n", s)
	}
	return body + "```\n"
}
