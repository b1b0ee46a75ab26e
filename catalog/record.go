package catalog

import "strings"

// IntegrationRecord is one integration's reconciled view: manifest capability
// flag, documentation-declared sources, and (after matching) the bound
// pipeline id. Records are built once per run and never mutated afterwards,
// except for the single pipeline binding.
type IntegrationRecord struct {
	// DirName is the catalog directory name; unique across all records
	// (filesystem-guaranteed).
	DirName string

	// DisplayName is the human-readable integration name from the
	// manifest, used only in report text.
	DisplayName string

	// IntegrationID is the short canonical identifier from the manifest,
	// also usable as a matching alias.
	IntegrationID string

	// SupportsLogs is true iff the manifest categories contain the
	// literal "log collection".
	SupportsLogs bool

	// DocumentedSources holds the distinct log-source identifiers
	// extracted from the integration's documentation, sorted. May be
	// empty; more than one entry is an anomaly surfaced by the validator.
	DocumentedSources []string

	// pipelineID is set at most once by the matcher.
	pipelineID string
}

// Bind assigns the matched pipeline id. It returns false if the record is
// already bound; once set the binding is immutable for the record's lifetime.
func (r *IntegrationRecord) Bind(pipelineID string) bool {
	if r.pipelineID != "" {
		return false
	}
	r.pipelineID = pipelineID
	return true
}

// Bound reports whether a pipeline id has been bound to this record.
func (r *IntegrationRecord) Bound() bool {
	return r.pipelineID != ""
}

// PipelineID returns the bound pipeline id, or "" if unbound.
func (r *IntegrationRecord) PipelineID() string {
	return r.pipelineID
}

// Aliases returns the candidate alias set used by the matcher:
// {directory name, display name, integration id} ∪ documented sources,
// all lower-cased.
func (r *IntegrationRecord) Aliases() map[string]struct{} {
	aliases := make(map[string]struct{}, 3+len(r.DocumentedSources))
	for _, a := range []string{r.DirName, r.DisplayName, r.IntegrationID} {
		if a != "" {
			aliases[strings.ToLower(a)] = struct{}{}
		}
	}
	for _, s := range r.DocumentedSources {
		aliases[strings.ToLower(s)] = struct{}{}
	}
	return aliases
}

// HasAlias reports whether id (case-insensitively) is in the record's
// candidate alias set.
func (r *IntegrationRecord) HasAlias(id string) bool {
	_, ok := r.Aliases()[strings.ToLower(id)]
	return ok
}
