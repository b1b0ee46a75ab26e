// Package catalog loads the integration catalog: one IntegrationRecord per
// integration directory, combining manifest metadata with log-source
// identifiers extracted from the integration's documentation.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obslab/pipecheck/errors"
	"github.com/obslab/pipecheck/logger"
)

const (
	manifestFile = "manifest.yaml"
	readmeFile   = "README.md"
)

// manifest mirrors the subset of manifest.yaml that pipecheck reads.
type manifest struct {
	Name          string   `yaml:"name"`
	IntegrationID string   `yaml:"integration_id"`
	Categories    []string `yaml:"categories"`
}

// logCollectionCategory is the manifest category literal that declares the
// log collection capability.
const logCollectionCategory = "log collection"

// Load scans the immediate subdirectories of root in lexicographic order and
// returns one IntegrationRecord per integration. Directories whose name
// begins with "." or "_" and directories without a manifest.yaml are
// skipped. A manifest that fails to parse or lacks required keys aborts the
// whole load: a reconciliation report built on a partial catalog would be
// misleading.
func Load(root string) ([]*IntegrationRecord, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read integrations root %s", root)
	}

	var records []*IntegrationRecord
	// os.ReadDir returns entries sorted by name, which gives the
	// deterministic catalog order the matcher and report depend on.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		manifestPath := filepath.Join(root, name, manifestFile)
		if _, err := os.Stat(manifestPath); err != nil {
			if os.IsNotExist(err) {
				logger.Debugw("skipping directory without manifest",
					logger.FieldIntegration, name)
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", manifestPath)
		}

		rec, err := loadIntegration(root, name)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	logger.Infow("integration catalog loaded",
		logger.FieldRoot, root,
		logger.FieldCount, len(records))
	return records, nil
}

// loadIntegration builds one record from <root>/<dir>/manifest.yaml and the
// directory's README.md.
func loadIntegration(root, dir string) (*IntegrationRecord, error) {
	manifestPath := filepath.Join(root, dir, manifestFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrManifestInvalid, "read %s: %v", manifestPath, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(errors.ErrManifestInvalid, "parse %s: %v", manifestPath, err)
	}
	if m.Name == "" {
		return nil, errors.NewManifestError("%s: missing required key %q", manifestPath, "name")
	}
	if m.IntegrationID == "" {
		return nil, errors.NewManifestError("%s: missing required key %q", manifestPath, "integration_id")
	}

	sources, err := loadDocumentedSources(filepath.Join(root, dir, readmeFile))
	if err != nil {
		return nil, err
	}

	return &IntegrationRecord{
		DirName:           dir,
		DisplayName:       m.Name,
		IntegrationID:     m.IntegrationID,
		SupportsLogs:      hasCategory(m.Categories, logCollectionCategory),
		DocumentedSources: sources,
	}, nil
}

// loadDocumentedSources reads the documentation file and extracts declared
// sources. An absent README is the valid "no log source documented" state;
// any other read failure is a catalog integrity error.
func loadDocumentedSources(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read documentation %s", path)
	}
	return ExtractSources(string(data)), nil
}

func hasCategory(categories []string, want string) bool {
	for _, c := range categories {
		if c == want {
			return true
		}
	}
	return false
}
