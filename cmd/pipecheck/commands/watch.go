package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/obslab/pipecheck/config"
	"github.com/obslab/pipecheck/reconcile"
	"github.com/obslab/pipecheck/sym"
	"github.com/obslab/pipecheck/watch"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch <logs-to-metrics.json>",
	Short: sym.Watch + " Revalidate whenever either catalog changes",
	Long: sym.Watch + ` watch — Revalidate whenever either catalog changes

Runs one validation pass immediately, then watches both catalog roots and
re-runs the pass on file changes (debounced). Findings are printed as a
table after every pass. Intended for local authoring loops; CI should use
'pipecheck validate'.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	w, err := watch.New(cfg, printPass)
	if err != nil {
		return err
	}
	defer w.Close()

	w.Revalidate()
	w.Start()

	fmt.Fprintf(os.Stderr, "%s watching %s and %s (Ctrl-C to stop)\n",
		sym.Watch, cfg.IntegrationsRoot, cfg.PipelinesRoot)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

// printPass renders one pass outcome. Pass failures (e.g. a manifest
// mid-edit) are reported and watching continues.
func printPass(result *reconcile.Result, err error) {
	if err != nil {
		pterm.Error.Printfln("pass failed: %v", err)
		return
	}
	if result.Report.Empty() {
		pterm.Success.Printfln("%s %d integrations, all consistent", sym.OK, len(result.Records))
		return
	}
	for _, name := range result.Report.Integrations() {
		for _, finding := range result.Report[name] {
			pterm.Warning.Printfln("%s %s: %s", sym.Finding, name, finding)
		}
	}
}
