package reconcile

import (
	"time"

	"github.com/obslab/pipecheck/catalog"
	"github.com/obslab/pipecheck/config"
	"github.com/obslab/pipecheck/logger"
	"github.com/obslab/pipecheck/pipeline"
)

// Result is the outcome of one full validation pass.
type Result struct {
	Records     []*catalog.IntegrationRecord
	PipelineIDs []string
	Report      Report
}

// Run executes one single-shot validation pass: load both catalogs, bind
// pipelines to records, validate every record. Any load or matching failure
// aborts before a report exists — no report is better than a wrong report.
func Run(cfg *config.Config) (*Result, error) {
	start := time.Now()

	records, err := catalog.Load(cfg.IntegrationsRoot)
	if err != nil {
		return nil, err
	}
	ids, err := pipeline.Load(cfg.PipelinesRoot)
	if err != nil {
		return nil, err
	}

	if err := MatchPipelines(records, ids); err != nil {
		return nil, err
	}

	report := Report{}
	for _, rec := range records {
		if findings := Validate(rec); len(findings) > 0 {
			report[rec.DirName] = findings
		}
	}

	logger.Infow("validation pass complete",
		logger.FieldCount, len(records),
		logger.FieldFindings, len(report),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &Result{
		Records:     records,
		PipelineIDs: ids,
		Report:      report,
	}, nil
}
