package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindIsSetOnce(t *testing.T) {
	rec := &IntegrationRecord{DirName: "apache"}

	assert.False(t, rec.Bound())
	assert.True(t, rec.Bind("apache"))
	assert.True(t, rec.Bound())
	assert.Equal(t, "apache", rec.PipelineID())

	// Second bind is rejected; the first binding is immutable.
	assert.False(t, rec.Bind("httpd"))
	assert.Equal(t, "apache", rec.PipelineID())
}

func TestAliases(t *testing.T) {
	rec := &IntegrationRecord{
		DirName:           "apache",
		DisplayName:       "Apache Web Server",
		IntegrationID:     "apache",
		DocumentedSources: []string{"httpd"},
	}

	aliases := rec.Aliases()
	assert.Len(t, aliases, 3) // dir name and integration id collapse
	assert.Contains(t, aliases, "apache")
	assert.Contains(t, aliases, "apache web server")
	assert.Contains(t, aliases, "httpd")
}

func TestHasAliasCaseInsensitive(t *testing.T) {
	rec := &IntegrationRecord{DirName: "apache", DisplayName: "Apache", IntegrationID: "apache"}

	assert.True(t, rec.HasAlias("APACHE"))
	assert.True(t, rec.HasAlias("Apache"))
	assert.False(t, rec.HasAlias("nginx"))
}
