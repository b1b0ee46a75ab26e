// Package reconcile binds pipeline identifiers to integration records and
// validates each record's manifest/documentation/pipeline consistency.
package reconcile

import (
	"strings"

	"github.com/obslab/pipecheck/catalog"
	"github.com/obslab/pipecheck/errors"
	"github.com/obslab/pipecheck/logger"
)

// MatchPipelines resolves each pipeline id against the integration records,
// in catalog order. A pipeline id matching no record is silently dropped:
// pipelines belonging to integrations outside the catalog are expected.
//
// A pipeline id whose alias resolves to more than one record is a hard
// error. Silent first-match shadowing would credit the pipeline to the
// lexicographically first integration and leave the other one reported as
// missing its pipeline — a wrong report, which fail-closed policy forbids.
func MatchPipelines(records []*catalog.IntegrationRecord, pipelineIDs []string) error {
	for _, id := range pipelineIDs {
		var matched []*catalog.IntegrationRecord
		for _, rec := range records {
			if rec.HasAlias(id) {
				matched = append(matched, rec)
			}
		}

		switch len(matched) {
		case 0:
			logger.Debugw("pipeline matches no integration",
				logger.FieldPipeline, id)
		case 1:
			rec := matched[0]
			if !rec.Bind(id) {
				// A record is matched by at most one pipeline id;
				// the first binding (by pipeline catalog order) wins.
				logger.Warnw("integration already bound to a pipeline",
					logger.FieldIntegration, rec.DirName,
					logger.FieldPipeline, id)
				continue
			}
			logger.Debugw("pipeline bound",
				logger.FieldPipeline, id,
				logger.FieldIntegration, rec.DirName)
		default:
			names := make([]string, len(matched))
			for i, rec := range matched {
				names[i] = rec.DirName
			}
			return errors.Wrapf(errors.ErrAmbiguousAlias,
				"pipeline %q aliases multiple integrations: %s",
				id, strings.Join(names, ", "))
		}
	}
	return nil
}
