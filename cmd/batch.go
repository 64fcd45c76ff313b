package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/alexiusacademia/golash/internal/config"
	"github.com/alexiusacademia/golash/internal/report"
	"github.com/alexiusacademia/golash/internal/scenario"
	"github.com/alexiusacademia/golash/internal/sliding"
	"github.com/spf13/cobra"
)

var (
	batchFile    string
	batchWorkers int
	batchXLSX    string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many lashing scenarios in parallel",
	Long: `Evaluate every scenario in a batch file and print a summary table.
A scenario that fails (bad geometry, no usable reference lashing) is
reported on its own row; the rest of the batch still runs.

Batch file format (YAML or JSON):
  scenarios:
    - name: Crate A
      cargo: {length: 3, width: 23, height: 2.7, mass: 160}
      environment: {slope: 3, wind_scale: 4, friction: 0.2}
      lashings:
        - {alpha: 20, beta: 30, breaking_strength: 5, side: F}

Example:
  golash batch -f loads.yaml --workers 8 --xlsx loads.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Batch file (json, yaml)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Parallel workers (default from config batch.workers)")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write results to an Excel workbook")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := scenario.LoadBatchFromFile(batchFile)
	if err != nil {
		return fmt.Errorf("loading batch: %w", err)
	}

	workers := config.GetInt("batch.workers")
	if cmd.Flags().Changed("workers") {
		workers = batchWorkers
	}
	opts := scenario.Options{MaxAdditional: config.GetInt("sliding.maxAdditional")}

	slog.Debug("running batch", "file", batchFile, "scenarios", len(b.Scenarios), "workers", workers)

	items, err := scenario.EvaluateBatch(cmd.Context(), b, opts, workers)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	failed := printBatch(w, items)

	if batchXLSX != "" {
		if err := report.SaveBatchXLSX(batchXLSX, items); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(w, "  Workbook written to: %s\n\n", batchXLSX)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(items))
	}
	return nil
}

// printBatch writes the summary table and returns the number of failed items
func printBatch(out io.Writer, items []scenario.BatchItem) int {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          BATCH SLIDING ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tScenario\tTransverse\tLongitudinal\n")
	fmt.Fprintf(w, "  ─\t────────\t──────────\t────────────\n")

	failed := 0
	for _, it := range items {
		if it.Err != nil {
			failed++
			fmt.Fprintf(w, "  %d\t%s\t✗ %v\t\n", it.Index+1, it.Name, it.Err)
			continue
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", it.Index+1, it.Name,
			batchCell(it.Outcome.Lateral), batchCell(it.Outcome.Longitudinal))
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %d scenario(s), %d failed\n\n", len(items), failed)
	return failed
}

func batchCell(r *sliding.Result) string {
	if r.Stable {
		return "✓ OK"
	}
	return fmt.Sprintf("⚠ +%d", r.AdditionalLashings)
}
