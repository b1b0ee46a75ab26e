package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obslab/pipecheck/catalog"
	"github.com/obslab/pipecheck/errors"
	pipetest "github.com/obslab/pipecheck/internal/testing"
)

func TestLoadCatalog(t *testing.T) {
	tree := pipetest.NewTree(t)
	tree.AddIntegration(t, "apache", pipetest.Manifest("Apache", "apache", "web", "log collection"), pipetest.ReadmeWithSources("apache"))
	tree.AddIntegration(t, "zookeeper", pipetest.Manifest("ZooKeeper", "zk"), "")
	tree.AddIntegration(t, "nginx", pipetest.Manifest("Nginx", "nginx", "log collection"), "")

	records, err := catalog.Load(tree.IntegrationsRoot)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Lexicographic catalog order.
	assert.Equal(t, "apache", records[0].DirName)
	assert.Equal(t, "nginx", records[1].DirName)
	assert.Equal(t, "zookeeper", records[2].DirName)

	apache := records[0]
	assert.Equal(t, "Apache", apache.DisplayName)
	assert.Equal(t, "apache", apache.IntegrationID)
	assert.True(t, apache.SupportsLogs)
	assert.Equal(t, []string{"apache"}, apache.DocumentedSources)

	zk := records[2]
	assert.False(t, zk.SupportsLogs)
	assert.Empty(t, zk.DocumentedSources)
	assert.False(t, zk.Bound())
}

func TestLoadSkipsReservedAndManifestless(t *testing.T) {
	tree := pipetest.NewTree(t)
	tree.AddIntegration(t, ".hidden", pipetest.Manifest("Hidden", "hidden"), "")
	tree.AddIntegration(t, "_template", pipetest.Manifest("Template", "template"), "")
	tree.AddDir(t, "docs-only")
	tree.AddIntegration(t, "redisdb", pipetest.Manifest("Redis", "redisdb"), "")

	records, err := catalog.Load(tree.IntegrationsRoot)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "redisdb", records[0].DirName)
}

func TestLoadFatalOnBadManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"unparseable yaml", "name: [unclosed\n"},
		{"missing name", "integration_id: foo\n"},
		{"missing integration_id", "name: Foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := pipetest.NewTree(t)
			tree.AddIntegration(t, "good", pipetest.Manifest("Good", "good"), "")
			tree.AddIntegration(t, "broken", tt.manifest, "")

			_, err := catalog.Load(tree.IntegrationsRoot)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrManifestInvalid))
			assert.True(t, errors.IsFatalLoadError(err))
		})
	}
}

func TestLoadMissingRoot(t *testing.T) {
	_, err := catalog.Load("/nonexistent/integrations")
	require.Error(t, err)
}

func TestLoadMissingReadmeIsNotAnError(t *testing.T) {
	tree := pipetest.NewTree(t)
	tree.AddIntegration(t, "bare", pipetest.Manifest("Bare", "bare", "log collection"), "")

	records, err := catalog.Load(tree.IntegrationsRoot)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].DocumentedSources)
}
