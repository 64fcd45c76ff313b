package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golash/internal/lashing"
	"github.com/alexiusacademia/golash/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	tippingFile     string
	tippingLashings []string
)

var tippingCmd = &cobra.Command{
	Use:   "tipping",
	Short: "Resolve lashing forces into 3D vectors",
	Long: `Convert each lashing into spherical angles and an (Fx, Fy, Fz) force
vector for use in tipping (moment) calculations. Every lashing needs a
side and a lean direction (R or L).

Examples:
  golash tipping --lashing alpha=20,beta=30,strength=5,side=F,lean=L
  golash tipping -f trailer.yaml`,
	RunE: runTipping,
}

func init() {
	rootCmd.AddCommand(tippingCmd)

	tippingCmd.Flags().StringVarP(&tippingFile, "file", "f", "", "Scenario file (json, yaml); only lashings are used")
	tippingCmd.Flags().StringArrayVarP(&tippingLashings, "lashing", "l", nil, "Lashing as key=value list (repeatable)")

	tippingCmd.MarkFlagsMutuallyExclusive("file", "lashing")
	tippingCmd.MarkFlagsOneRequired("file", "lashing")
}

func runTipping(cmd *cobra.Command, args []string) error {
	var entries []scenario.Lashing
	if tippingFile != "" {
		s, err := scenario.LoadFromFile(tippingFile)
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
		entries = s.Lashings
	} else {
		for _, raw := range tippingLashings {
			l, err := parseLashingFlag(raw)
			if err != nil {
				return err
			}
			entries = append(entries, l)
		}
	}

	var set lashing.Set
	for i, e := range entries {
		var friction float64
		if e.Friction != nil {
			friction = *e.Friction
		}
		r, err := lashing.New(lashing.Spec{
			Alpha:    e.Alpha,
			Beta:     e.Beta,
			Strength: e.Strength,
			Friction: friction,
			Side:     lashing.Side(e.Side),
			Lean:     lashing.Lean(e.Lean),
		})
		if err != nil {
			return fmt.Errorf("lashing %d: %w", i+1, err)
		}
		set.Lashings = append(set.Lashings, r)
	}

	forces, err := lashing.SphericalAll(set)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          LASHING FORCE VECTORS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	printTipping(out, forces)

	for i, f := range forces {
		fmt.Fprintf(out, "  |F%d| = %.3f\n", i+1, f.Magnitude())
	}
	fmt.Fprintln(out)
	return nil
}
