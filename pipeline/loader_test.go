package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obslab/pipecheck/errors"
	pipetest "github.com/obslab/pipecheck/internal/testing"
	"github.com/obslab/pipecheck/pipeline"
)

func TestLoadPipelines(t *testing.T) {
	tree := pipetest.NewTree(t)
	tree.AddPipeline(t, "zebra.json", `{"id": "zebra", "processors": []}`)
	tree.AddPipeline(t, "apache.json", `{"id": "apache", "processors": []}`)
	tree.AddPipeline(t, "nginx.yaml", "id: nginx\nprocessors: []\n")

	ids, err := pipeline.Load(tree.PipelinesRoot)
	require.NoError(t, err)

	// Lexicographic filename order, not declaration order.
	assert.Equal(t, []string{"apache", "nginx", "zebra"}, ids)
}

func TestLoadFatalOnBadPipeline(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unparseable", `{"id": `},
		{"missing id", `{"name": "anonymous"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := pipetest.NewTree(t)
			tree.AddPipeline(t, "good.json", `{"id": "good"}`)
			tree.AddPipeline(t, "broken.json", tt.content)

			_, err := pipeline.Load(tree.PipelinesRoot)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrPipelineInvalid))
			assert.True(t, errors.IsFatalLoadError(err))
		})
	}
}

func TestLoadEmptyRoot(t *testing.T) {
	tree := pipetest.NewTree(t)

	ids, err := pipeline.Load(tree.PipelinesRoot)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLoadMissingRoot(t *testing.T) {
	_, err := pipeline.Load("/nonexistent/pipelines")
	require.Error(t, err)
}
