package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/golash/internal/cargo"
	"github.com/spf13/cobra"
)

var (
	windLength float64
	windWidth  float64
	windHeight float64
)

var windCmd = &cobra.Command{
	Use:   "wind",
	Short: "Show the Beaufort wind table and wind forces",
	Long: `Print the Beaufort scale with its design wind speed. When cargo
dimensions are given, the longitudinal and lateral wind force on the
cargo is listed for every scale.

Wind force: F = 0.001 · 0.5 · 1.225 · A · v²

Example:
  golash wind --length 3 --width 23 --height 2.7`,
	RunE: runWind,
}

func init() {
	rootCmd.AddCommand(windCmd)

	windCmd.Flags().Float64Var(&windLength, "length", 0, "Cargo length X (m)")
	windCmd.Flags().Float64Var(&windWidth, "width", 0, "Cargo width Y (m)")
	windCmd.Flags().Float64Var(&windHeight, "height", 0, "Cargo height Z (m)")

	windCmd.MarkFlagsRequiredTogether("length", "width", "height")
}

func runWind(cmd *cobra.Command, args []string) error {
	var u *cargo.Unit
	if cmd.Flags().Changed("length") {
		// Mass does not enter the wind force
		unit, err := cargo.NewUnit(windLength, windWidth, windHeight, 1)
		if err != nil {
			return err
		}
		u = unit
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "BEAUFORT WIND SCALE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if u == nil {
		fmt.Fprintf(w, "  Beaufort\tSpeed (km/h)\n")
		fmt.Fprintf(w, "  ────────\t────────────\n")
	} else {
		fmt.Fprintf(w, "  Beaufort\tSpeed (km/h)\tLongitudinal\tLateral\n")
		fmt.Fprintf(w, "  ────────\t────────────\t────────────\t───────\n")
	}

	for _, row := range cargo.BeaufortTable() {
		if u == nil {
			fmt.Fprintf(w, "  %d\t%.0f\n", row.Scale, row.SpeedKmh)
			continue
		}
		load, err := cargo.NewWindLoad(u, row.Scale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d\t%.0f\t%.3f\t%.3f\n", row.Scale, row.SpeedKmh, load.Longitudinal, load.Lateral)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
