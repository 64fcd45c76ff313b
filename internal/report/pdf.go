package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexiusacademia/golash/internal/scenario"
	"github.com/alexiusacademia/golash/internal/sliding"
	"github.com/phpdave11/gofpdf"
)

// Meta is the report header
type Meta struct {
	Title   string
	Project string
	Author  string
	Date    time.Time
}

// WritePDF renders a lashing calculation report for one outcome
func WritePDF(w io.Writer, meta Meta, out *scenario.Outcome) error {
	if out == nil {
		return fmt.Errorf("no calculation outcome")
	}
	if meta.Title == "" {
		meta.Title = "Lashing Calculation Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	s := out.Scenario
	heading(pdf, "1. Input Parameters")

	subheading(pdf, "Load Specifications")
	table(pdf, []float64{70, 50}, []string{"Parameter", "Value"}, [][]string{
		{"Length (X)", fmt.Sprintf("%.2f m", out.Unit.Length())},
		{"Width (Y)", fmt.Sprintf("%.2f m", out.Unit.Width())},
		{"Height (Z)", fmt.Sprintf("%.2f m", out.Unit.Height())},
		{"Mass", fmt.Sprintf("%.2f kg", out.Unit.Mass())},
		{"Weight", fmt.Sprintf("%.2f", out.Unit.Weight())},
	})

	subheading(pdf, "Environmental Conditions")
	table(pdf, []float64{70, 50}, []string{"Parameter", "Value"}, [][]string{
		{"Slope", fmt.Sprintf("%.2f deg", out.Forces.Slope)},
		{"Wind force", fmt.Sprintf("Beaufort %d (%.0f km/h)", out.Wind.Scale, out.Wind.SpeedKmh)},
		{"Friction coefficient", fmt.Sprintf("%.3f", s.Environment.Friction)},
	})

	subheading(pdf, "Lashing Configurations")
	rows := make([][]string, 0, len(out.Lashings.Lashings))
	for i, l := range out.Lashings.Lashings {
		ref := ""
		if l == out.Lashings.Ref() {
			ref = "*"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d%s", i+1, ref),
			fmt.Sprintf("%.1f", l.Alpha()),
			fmt.Sprintf("%.1f", l.Beta()),
			fmt.Sprintf("%.2f", l.Strength()),
			l.Side().String(),
			fmt.Sprintf("%.2f", l.Fx()),
			fmt.Sprintf("%.2f", l.Fy()),
		})
	}
	table(pdf, []float64{18, 22, 22, 32, 22, 32, 32},
		[]string{"Lashing", "Alpha", "Beta", "Strength", "Side", "fx", "fy"}, rows)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, "* reference lashing used for additional lashings")
	pdf.Ln(8)

	heading(pdf, "2. Design Forces")
	table(pdf, []float64{70, 50}, []string{"Direction", "Force"}, [][]string{
		{"Forward (braking)", fmt.Sprintf("%.2f", out.Forces.Forward)},
		{"Aft (acceleration)", fmt.Sprintf("%.2f", out.Forces.Aft)},
		{"Left (cornering)", fmt.Sprintf("%.2f", out.Forces.Left)},
		{"Right (cornering)", fmt.Sprintf("%.2f", out.Forces.Right)},
		{"Longitudinal total", fmt.Sprintf("%.2f", out.Forces.LongitudinalTotal)},
		{"Lateral total", fmt.Sprintf("%.2f", out.Forces.LateralTotal)},
	})

	heading(pdf, "3. Calculation Results")
	slidingSection(pdf, "Transverse Sliding Analysis", out.Lateral)
	slidingSection(pdf, "Longitudinal Sliding Analysis", out.Longitudinal)

	if len(out.Tipping) > 0 {
		heading(pdf, "4. Lashing Force Vectors")
		rows := make([][]string, 0, len(out.Tipping))
		for i, f := range out.Tipping {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				f.Side.String() + "/" + f.Lean.String(),
				fmt.Sprintf("%.1f", f.Alpha),
				fmt.Sprintf("%.1f", f.Beta),
				fmt.Sprintf("%.3f", f.Vector.X),
				fmt.Sprintf("%.3f", f.Vector.Y),
				fmt.Sprintf("%.3f", f.Vector.Z),
			})
		}
		table(pdf, []float64{18, 30, 26, 26, 28, 28, 28},
			[]string{"Lashing", "Side/Lean", "s-alpha", "s-beta", "Fx", "Fy", "Fz"}, rows)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF writes the report to a file
func SavePDF(filename string, meta Meta, out *scenario.Outcome) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WritePDF(f, meta, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(10)
}

func subheading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, text)
	pdf.Ln(7)
}

func table(pdf *gofpdf.Fpdf, widths []float64, header []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "TB", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for r, row := range rows {
		border := ""
		if r == len(rows)-1 {
			border = "B"
		}
		for i, cell := range row {
			align := "C"
			if i == 0 && len(widths) == 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, cell, border, 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func slidingSection(pdf *gofpdf.Fpdf, title string, r *sliding.Result) {
	subheading(pdf, title)
	pdf.SetFont("Courier", "", 10)

	lines := []string{
		fmt.Sprintf("Design force:     %.2f", r.TotalForce),
		fmt.Sprintf("Restraint force:  %.2f (friction %.2f)", r.RestraintForce, r.Friction),
	}
	if r.Stable {
		lines = append(lines, r.Message+".")
	} else {
		lines = append(lines,
			r.Message+".",
			fmt.Sprintf("You need %d more lashing(s) (%.2f each).", r.AdditionalLashings, r.UnitContribution))
	}
	for _, l := range lines {
		pdf.Cell(0, 5, l)
		pdf.Ln(5)
	}
	pdf.Ln(4)
}
