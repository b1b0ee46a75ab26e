package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obslab/pipecheck/cmd/pipecheck/commands"
	"github.com/obslab/pipecheck/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pipecheck",
	Short: "pipecheck - log pipeline to integration consistency checker",
	Long: `pipecheck - log pipeline to integration consistency checker.

pipecheck cross-references three independently maintained sources — the
integration catalog (manifests), per-integration documentation, and the
log-pipeline definition catalog — and reports every integration whose
log-source declarations disagree across them.

Configuration:
  PIPECHECK_PIPELINES_DIR      root of the pipeline-definition catalog
  PIPECHECK_INTEGRATIONS_DIR   root of the integration catalog
  (or pipelines_dir / integrations_dir in a pipecheck.toml)

Examples:
  pipecheck validate logs_to_metrics.json            # JSON report on stdout
  pipecheck validate -f table logs_to_metrics.json   # human-readable table
  pipecheck watch logs_to_metrics.json               # revalidate on change`,
	// Errors are printed once by main; usage still renders on argument
	// misuse.
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.InitializeWithVerbosity(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs on stderr")

	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
