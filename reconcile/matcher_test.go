package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obslab/pipecheck/catalog"
	"github.com/obslab/pipecheck/errors"
)

func record(dir, display, id string, sources ...string) *catalog.IntegrationRecord {
	return &catalog.IntegrationRecord{
		DirName:           dir,
		DisplayName:       display,
		IntegrationID:     id,
		DocumentedSources: sources,
	}
}

func TestMatchBindsByAlias(t *testing.T) {
	tests := []struct {
		name       string
		pipelineID string
	}{
		{"directory name", "apache"},
		{"display name", "Apache Web Server"},
		{"documented source", "httpd"},
		{"case insensitive", "APACHE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record("apache", "Apache Web Server", "apache", "httpd")

			err := MatchPipelines([]*catalog.IntegrationRecord{rec}, []string{tt.pipelineID})
			require.NoError(t, err)
			assert.True(t, rec.Bound())
			assert.Equal(t, tt.pipelineID, rec.PipelineID())
		})
	}
}

func TestMatchUnknownPipelineSilentlyDropped(t *testing.T) {
	rec := record("apache", "Apache", "apache")

	err := MatchPipelines([]*catalog.IntegrationRecord{rec}, []string{"mystery"})
	require.NoError(t, err)
	assert.False(t, rec.Bound())
}

func TestMatchAmbiguousAliasIsHardError(t *testing.T) {
	// Both integrations document the same source string — a documentation
	// error that silent first-match shadowing would hide.
	a := record("aerospike", "Aerospike", "aerospike", "shared")
	b := record("bind", "BIND", "bind", "shared")

	err := MatchPipelines([]*catalog.IntegrationRecord{a, b}, []string{"shared"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAmbiguousAlias))
	assert.Contains(t, err.Error(), "aerospike")
	assert.Contains(t, err.Error(), "bind")
}

func TestMatchKeepsFirstBinding(t *testing.T) {
	// Two pipeline ids aliasing the same record: the record stays bound to
	// the first id seen (pipeline catalog order).
	rec := record("apache", "Apache", "apache", "httpd")

	err := MatchPipelines([]*catalog.IntegrationRecord{rec}, []string{"apache", "httpd"})
	require.NoError(t, err)
	assert.Equal(t, "apache", rec.PipelineID())
}

func TestMatchIsDeterministic(t *testing.T) {
	build := func() []*catalog.IntegrationRecord {
		return []*catalog.IntegrationRecord{
			record("apache", "Apache", "apache"),
			record("nginx", "Nginx", "nginx"),
			record("redisdb", "Redis", "redisdb"),
		}
	}

	for i := 0; i < 5; i++ {
		records := build()
		require.NoError(t, MatchPipelines(records, []string{"nginx"}))
		assert.False(t, records[0].Bound())
		assert.True(t, records[1].Bound())
		assert.False(t, records[2].Bound())
	}
}
