// Package pipeline loads the pipeline-definition catalog and yields each
// pipeline's declared identifier.
package pipeline

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/obslab/pipecheck/errors"
	"github.com/obslab/pipecheck/logger"
)

// definition mirrors the only field pipecheck reads from a pipeline file.
// Definitions are JSON documents in the backend repository; YAML is a JSON
// superset, so one codec covers both spellings.
type definition struct {
	ID string `yaml:"id"`
}

// Load enumerates the regular files of root in lexicographic filename order
// and returns each pipeline's id. A file that fails to parse or carries no
// id aborts the whole load.
func Load(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read pipelines root %s", root)
	}

	var ids []string
	// os.ReadDir returns entries sorted by name; ids keep that order.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		id, err := loadID(path)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	logger.Infow("pipeline catalog loaded",
		logger.FieldRoot, root,
		logger.FieldCount, len(ids))
	return ids, nil
}

func loadID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(errors.ErrPipelineInvalid, "read %s: %v", path, err)
	}

	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return "", errors.Wrapf(errors.ErrPipelineInvalid, "parse %s: %v", path, err)
	}
	if def.ID == "" {
		return "", errors.NewPipelineError("%s: missing required key %q", path, "id")
	}
	return def.ID, nil
}
