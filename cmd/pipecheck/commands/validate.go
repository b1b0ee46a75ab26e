package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/obslab/pipecheck/config"
	"github.com/obslab/pipecheck/errors"
	"github.com/obslab/pipecheck/reconcile"
	"github.com/obslab/pipecheck/sym"
)

var validateFormat string

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate <logs-to-metrics.json>",
	Short: sym.OK + " Run one validation pass over both catalogs",
	Long: sym.OK + ` validate — Run one validation pass over both catalogs

Loads the integration catalog and the pipeline catalog, binds every pipeline
id to at most one integration, validates each integration record, and writes
the findings report as a JSON object on stdout (directory name → findings).
Integrations with zero findings are omitted: an empty object means the
catalogs are consistent.

The single argument names the logs-to-metrics mapping file. Its contents are
reserved for future cross-checking but must parse as a JSON object.

The exit code is 0 whenever the pass completes, findings or not; deciding
whether findings fail the build is the caller's policy. Fatal catalog errors
(malformed manifest or pipeline file, ambiguous alias) abort before any
report is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	ValidateCmd.Flags().StringVarP(&validateFormat, "format", "f", "json", "Output format (json/table); the table renders on stderr")
}

func runValidate(cmd *cobra.Command, args []string) error {
	switch validateFormat {
	case "json", "table":
	default:
		return errors.Newf("unknown format %q (expected json or table)", validateFormat)
	}

	if err := loadMetricsMapping(args[0]); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := reconcile.Run(cfg)
	if err != nil {
		return err
	}

	// The table is a human-oriented view on stderr; stdout always carries
	// the machine-readable report.
	if validateFormat == "table" {
		if err := displayTable(result.Report); err != nil {
			return err
		}
	}
	return displayJSON(result.Report)
}

// loadMetricsMapping parses the logs-to-metrics mapping argument. The
// mapping is unused by the validation pass today, but a corrupt file should
// fail the run now rather than once the cross-check lands.
func loadMetricsMapping(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read mapping %s", path)
	}
	var mapping map[string]json.RawMessage
	if err := json.Unmarshal(data, &mapping); err != nil {
		return errors.Wrapf(err, "parse mapping %s", path)
	}
	return nil
}

func displayJSON(report reconcile.Report) error {
	out, err := report.JSON()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func displayTable(report reconcile.Report) error {
	if report.Empty() {
		pterm.Success.WithWriter(os.Stderr).Printfln("%s all integrations consistent", sym.OK)
		return nil
	}

	data := pterm.TableData{{"Integration", "Finding"}}
	for _, name := range report.Integrations() {
		for _, finding := range report[name] {
			data = append(data, []string{name, sym.Finding + " " + finding})
		}
	}

	if err := pterm.DefaultTable.WithWriter(os.Stderr).WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\n%d integration(s) with findings\n", len(report))
	return nil
}
