package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/alexiusacademia/golash/internal/config"
	"github.com/alexiusacademia/golash/internal/diagram"
	"github.com/alexiusacademia/golash/internal/lashing"
	"github.com/alexiusacademia/golash/internal/report"
	"github.com/alexiusacademia/golash/internal/scenario"
	"github.com/alexiusacademia/golash/internal/sliding"
	"github.com/spf13/cobra"
)

var (
	// Scenario file
	analyzeFile string

	// Cargo inputs
	analyzeLength float64
	analyzeWidth  float64
	analyzeHeight float64
	analyzeMass   float64

	// Environment inputs
	analyzeSlope    float64
	analyzeWind     int
	analyzeFriction float64

	// Lashings
	analyzeLashings  []string
	analyzeReference int

	// Output options
	analyzeTipping     bool
	analyzeShowDiagram bool
	analyzePlotFile    string
	analyzeReportFile  string
	analyzeProject     string
	analyzeAuthor      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check a lashing arrangement against sliding",
	Long: `Calculate the design forces on a cargo unit and check whether its
lashings prevent transverse and longitudinal sliding. When they do
not, the number of additional reference lashings is reported.

Inputs come either from a scenario file (JSON or YAML) or from flags.
Each --lashing is a comma-separated list of key=value pairs:
  alpha     angle between cable and deck (degrees)
  beta      angle between projection and load axis (degrees)
  strength  breaking strength
  side      F (front), R (right/rear), L (left), A (aft)
  lean      R or L (only needed for --tipping)
  friction  friction coefficient (defaults to --friction)

Examples:
  # Four straight lashings on a 3x23x2.7m, 160kg load on a 3° slope
  golash analyze --length 3 --width 23 --height 2.7 --mass 160 --slope 3 \
    --lashing alpha=0,beta=0,strength=5,side=F \
    --lashing alpha=0,beta=0,strength=5,side=R \
    --lashing alpha=0,beta=0,strength=5,side=L \
    --lashing alpha=0,beta=0,strength=5,side=A

  # From a scenario file, with a PDF report
  golash analyze -f trailer.yaml --report trailer.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Scenario file (json, yaml)")

	// Cargo flags
	analyzeCmd.Flags().Float64Var(&analyzeLength, "length", 0, "Cargo length X (m)")
	analyzeCmd.Flags().Float64Var(&analyzeWidth, "width", 0, "Cargo width Y, along travel (m)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Cargo height Z (m)")
	analyzeCmd.Flags().Float64VarP(&analyzeMass, "mass", "m", 0, "Cargo mass (kg)")

	// Environment flags (defaults from config)
	analyzeCmd.Flags().Float64VarP(&analyzeSlope, "slope", "s", 0, "Road slope (degrees, positive downhill)")
	analyzeCmd.Flags().IntVarP(&analyzeWind, "wind", "w", 0, "Wind force (Beaufort 0-12)")
	analyzeCmd.Flags().Float64Var(&analyzeFriction, "friction", 0, "Ground friction coefficient")

	// Lashing flags
	analyzeCmd.Flags().StringArrayVarP(&analyzeLashings, "lashing", "l", nil, "Lashing as key=value list (repeatable)")
	analyzeCmd.Flags().IntVar(&analyzeReference, "reference", 0, "Reference lashing number for the remedy (default: first)")

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeTipping, "tipping", false, "Also compute spherical force vectors (needs lean on every lashing)")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII force balance and remedy graph")
	analyzeCmd.Flags().StringVarP(&analyzePlotFile, "plot", "o", "", "Export force vector plot (png, svg, pdf); implies --tipping")
	analyzeCmd.Flags().StringVar(&analyzeReportFile, "report", "", "Write a PDF calculation report")
	analyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name for the report")
	analyzeCmd.Flags().StringVar(&analyzeAuthor, "author", "", "Author for the report")

	analyzeCmd.MarkFlagsMutuallyExclusive("file", "length")
	analyzeCmd.MarkFlagsMutuallyExclusive("file", "lashing")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := analyzeScenario(cmd)
	if err != nil {
		return err
	}

	opts := scenario.Options{
		MaxAdditional: config.GetInt("sliding.maxAdditional"),
		Tipping:       analyzeTipping || analyzePlotFile != "",
	}
	slog.Debug("analyzing scenario", "name", s.Name, "lashings", len(s.Lashings), "tipping", opts.Tipping)

	out, err := scenario.Evaluate(s, opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printOutcome(w, out)

	if analyzeShowDiagram {
		printDiagrams(w, out)
	}

	if analyzePlotFile != "" {
		if err := diagram.ExportForceDiagram(forceDiagramData(out), analyzePlotFile); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Fprintf(w, "  Force plot exported to: %s\n", analyzePlotFile)
	}

	if analyzeReportFile != "" {
		meta := report.Meta{Project: analyzeProject, Author: analyzeAuthor}
		if err := report.SavePDF(analyzeReportFile, meta, out); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(w, "  Report written to: %s\n", analyzeReportFile)
	}
	fmt.Fprintln(w)

	return nil
}

// analyzeScenario builds the scenario from --file or from the individual flags
func analyzeScenario(cmd *cobra.Command) (*scenario.Scenario, error) {
	var s *scenario.Scenario

	if analyzeFile != "" {
		loaded, err := scenario.LoadFromFile(analyzeFile)
		if err != nil {
			return nil, fmt.Errorf("loading scenario: %w", err)
		}
		s = loaded
	} else {
		s = &scenario.Scenario{
			Cargo: scenario.Cargo{
				Length: analyzeLength,
				Width:  analyzeWidth,
				Height: analyzeHeight,
				Mass:   analyzeMass,
			},
			Environment: scenario.Environment{
				Slope:     config.GetFloat("slope"),
				WindScale: config.GetInt("windScale"),
				Friction:  config.GetFloat("friction"),
			},
		}
		for _, raw := range analyzeLashings {
			l, err := parseLashingFlag(raw)
			if err != nil {
				return nil, err
			}
			s.Lashings = append(s.Lashings, l)
		}
	}

	// Explicit flags override file and config values
	flags := cmd.Flags()
	if flags.Changed("slope") {
		s.Environment.Slope = analyzeSlope
	}
	if flags.Changed("wind") {
		s.Environment.WindScale = analyzeWind
	}
	if flags.Changed("friction") {
		s.Environment.Friction = analyzeFriction
	}
	if flags.Changed("reference") {
		idx := analyzeReference - 1
		s.Reference = &idx
	}

	return s, nil
}

func printOutcome(out io.Writer, o *scenario.Outcome) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          CARGO LASHING SLIDING ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if o.Scenario.Name != "" {
		fmt.Fprintf(out, "  Scenario: %s\n\n", o.Scenario.Name)
	}

	fmt.Fprintln(out, "LOAD:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dimensions (X × Y × Z):\t%.2f × %.2f × %.2f m\n", o.Unit.Length(), o.Unit.Width(), o.Unit.Height())
	fmt.Fprintf(w, "  Mass:\t%.2f kg\n", o.Unit.Mass())
	fmt.Fprintf(w, "  Weight:\t%.2f\n", o.Unit.Weight())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "ENVIRONMENT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Slope:\t%.2f°\n", o.Forces.Slope)
	fmt.Fprintf(w, "  Wind:\tBeaufort %d (%.0f km/h)\n", o.Wind.Scale, o.Wind.SpeedKmh)
	fmt.Fprintf(w, "  Wind force (longitudinal / lateral):\t%.3f / %.3f\n", o.Wind.Longitudinal, o.Wind.Lateral)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LASHINGS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tSide\tα (°)\tβ (°)\tStrength\tμ\tfx\tfy\n")
	fmt.Fprintf(w, "  ─\t────\t─────\t─────\t────────\t─\t──\t──\n")
	ref := o.Lashings.Ref()
	for i, l := range o.Lashings.Lashings {
		marker := ""
		if l == ref {
			marker = " ← REF"
		}
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%.1f\t%.2f\t%.2f\t%.2f\t%.2f%s\n",
			i+1, l.Side(), l.Alpha(), l.Beta(), l.Strength(), l.Friction(), l.Fx(), l.Fy(), marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "DESIGN FORCES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Forward (braking 0.8g):\t%.2f\n", o.Forces.Forward)
	fmt.Fprintf(w, "  Aft (acceleration 0.5g):\t%.2f\n", o.Forces.Aft)
	fmt.Fprintf(w, "  Left / Right (cornering 0.5g):\t%.2f / %.2f\n", o.Forces.Left, o.Forces.Right)
	fmt.Fprintf(w, "  Longitudinal total:\t%.2f\n", o.Forces.LongitudinalTotal)
	fmt.Fprintf(w, "  Lateral total:\t%.2f\n", o.Forces.LateralTotal)
	w.Flush()
	fmt.Fprintln(out)

	printSliding(out, "TRANSVERSE SLIDING:", o.Lateral)
	printSliding(out, "LONGITUDINAL SLIDING:", o.Longitudinal)

	if len(o.Tipping) > 0 {
		fmt.Fprintln(out, "LASHING FORCE VECTORS (TIPPING):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		printTipping(out, o.Tipping)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		summaryLine("Transverse", o.Lateral),
		summaryLine("Longitudinal", o.Longitudinal),
	}))
	fmt.Fprintln(out)
}

func printSliding(out io.Writer, title string, r *sliding.Result) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design force:\t%.2f\n", r.TotalForce)
	fmt.Fprintf(w, "  Restraint (lashings + friction):\t%.2f", r.RestraintForce)
	if r.Stable {
		fmt.Fprintf(w, " ✓")
	} else {
		fmt.Fprintf(w, " ⚠")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Friction share:\t%.2f\n", r.Friction)
	if !r.Stable {
		fmt.Fprintf(w, "  Per additional lashing:\t%.2f\n", r.UnitContribution)
		fmt.Fprintf(w, "  Additional lashings needed:\t%d\n", r.AdditionalLashings)
	}
	w.Flush()
	fmt.Fprintf(out, "  %s\n", r.Message)
	fmt.Fprintln(out)
}

func printTipping(out io.Writer, forces []lashing.SphericalForce) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tSide/Lean\tsα (°)\tsβ (°)\tFx\tFy\tFz\n")
	fmt.Fprintf(w, "  ─\t─────────\t──────\t──────\t──\t──\t──\n")
	for i, f := range forces {
		fmt.Fprintf(w, "  %d\t%s/%s\t%.1f\t%.1f\t%.3f\t%.3f\t%.3f\n",
			i+1, f.Side, f.Lean, f.Alpha, f.Beta, f.Vector.X, f.Vector.Y, f.Vector.Z)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func summaryLine(label string, r *sliding.Result) string {
	if r.Stable {
		return fmt.Sprintf("%s: no sliding", label)
	}
	return fmt.Sprintf("%s: add %d lashing(s) on %s/%s", label, r.AdditionalLashings, r.RemedySides[0], r.RemedySides[1])
}

func printDiagrams(out io.Writer, o *scenario.Outcome) {
	for _, item := range []struct {
		title string
		r     *sliding.Result
	}{
		{"Transverse sliding", o.Lateral},
		{"Longitudinal sliding", o.Longitudinal},
	} {
		data := diagram.BalanceData{
			Title:      item.title,
			Design:     item.r.TotalForce,
			Restraint:  item.r.RestraintForce,
			Friction:   item.r.Friction,
			Additional: item.r.AdditionalLashings,
			Unit:       item.r.UnitContribution,
		}
		fmt.Fprint(out, diagram.DrawForceBalance(data))
		fmt.Fprint(out, diagram.DrawRemedyGraph(data))
	}
	fmt.Fprintln(out)
}

func forceDiagramData(o *scenario.Outcome) diagram.ForceDiagramData {
	data := diagram.ForceDiagramData{
		Length:   o.Unit.Length(),
		Width:    o.Unit.Width(),
		WidthIn:  config.GetFloat("plot.width"),
		HeightIn: config.GetFloat("plot.height"),
	}
	for i, f := range o.Tipping {
		l := o.Lashings.Lashings[i]
		origin, ok := l.Load()
		if !ok {
			origin = diagram.SideOrigin(string(l.Side()), data.Length, data.Width)
		}
		data.Arrows = append(data.Arrows, diagram.Arrow{
			Origin: origin,
			Force:  f.Vector,
			Label:  fmt.Sprintf("%d", i+1),
		})
	}
	return data
}
