package reconcile

import (
	"fmt"
	"strings"

	"github.com/obslab/pipecheck/catalog"
)

// Validate is a pure function from one fully-matched record to its list of
// inconsistency findings. An empty result means the record is consistent.
//
// Every rule is evaluated independently; findings accumulate and never
// short-circuit, so a record can simultaneously fail the capability check
// and the documentation check.
func Validate(rec *catalog.IntegrationRecord) []string {
	if !rec.Bound() {
		return validateUnbound(rec)
	}
	return validateBound(rec)
}

// validateUnbound covers records with no matching pipeline.
func validateUnbound(rec *catalog.IntegrationRecord) []string {
	var findings []string
	if rec.SupportsLogs {
		findings = append(findings,
			"declares log collection capability but has no pipeline")
	}
	for _, src := range rec.DocumentedSources {
		findings = append(findings,
			fmt.Sprintf("documents source %q but has no pipeline", src))
	}
	return findings
}

// validateBound covers records bound to a pipeline id.
func validateBound(rec *catalog.IntegrationRecord) []string {
	id := rec.PipelineID()

	var findings []string
	if !rec.SupportsLogs {
		findings = append(findings, fmt.Sprintf(
			"has pipeline %q but no %q category in its manifest",
			id, "log collection"))
	}

	switch len(rec.DocumentedSources) {
	case 0:
		findings = append(findings, fmt.Sprintf(
			"has pipeline %q but documents no source", id))
	case 1:
		// Matching may have happened via a different alias (directory
		// name, display name); the single documented source must still
		// agree with the pipeline id.
		if !strings.EqualFold(rec.DocumentedSources[0], id) {
			findings = append(findings, fmt.Sprintf(
				"has pipeline %q but documents source %q",
				id, rec.DocumentedSources[0]))
		}
	default:
		findings = append(findings, fmt.Sprintf(
			"has pipeline %q but documents multiple sources: %v",
			id, rec.DocumentedSources))
	}
	return findings
}
