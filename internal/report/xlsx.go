package report

import (
	"math"

	"github.com/alexiusacademia/golash/internal/scenario"
	"github.com/alexiusacademia/golash/internal/sliding"
	"github.com/xuri/excelize/v2"
)

const batchSheet = "Results"

var batchHeader = []any{
	"#", "Scenario", "Mass (kg)", "Slope (deg)", "Beaufort", "Lashings",
	"Lateral design", "Lateral restraint", "Lateral stable", "Lateral +lashings",
	"Longitudinal design", "Longitudinal restraint", "Longitudinal stable", "Longitudinal +lashings",
	"Error",
}

// SaveBatchXLSX writes one row per batch item to an Excel workbook
func SaveBatchXLSX(filename string, items []scenario.BatchItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", batchSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(batchSheet, "A1", &batchHeader); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(batchSheet, 1, 1, style); err != nil {
		return err
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := batchRow(it)
		if err := f.SetSheetRow(batchSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(batchSheet, "B", "B", 28); err != nil {
		return err
	}
	return f.SaveAs(filename)
}

func batchRow(it scenario.BatchItem) []any {
	row := []any{it.Index + 1, it.Name}
	if it.Err != nil {
		row = append(row, "", "", "", "", "", "", "", "", "", "", "", "", it.Err.Error())
		return row
	}

	out := it.Outcome
	row = append(row,
		out.Unit.Mass(),
		out.Forces.Slope,
		out.Wind.Scale,
		len(out.Lashings.Lashings),
	)
	row = append(row, axisCells(out.Lateral)...)
	row = append(row, axisCells(out.Longitudinal)...)
	row = append(row, "")
	return row
}

func axisCells(r *sliding.Result) []any {
	return []any{
		round2(r.TotalForce),
		round2(r.RestraintForce),
		yesNo(r.Stable),
		r.AdditionalLashings,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
