package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"snack-insights-go/internal/pipeline"
)

// ExportWorkbook writes the run snapshot to an XLSX workbook with one sheet
// per view: the brand leaderboard, the category health gap, and the
// thresholds used. Consumers feed these straight into reporting tools.
func ExportWorkbook(res pipeline.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const leaderboard = "Brand Leaderboard"
	f.SetSheetName(f.GetSheetName(0), leaderboard)
	setRow(f, leaderboard, 1, "brand", "total_products", "healthy_products", "healthy_pct")
	for i, b := range res.Brands {
		setRow(f, leaderboard, i+2, b.Brand, b.TotalProducts, b.HealthyProducts, round1(b.HealthyPct))
	}

	const gap = "Category Summary"
	if _, err := f.NewSheet(gap); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	setRow(f, gap, 1, "category", "total_products", "healthy_products", "healthy_pct")
	for i, c := range res.Categories {
		setRow(f, gap, i+2, c.Category, c.TotalProducts, c.HealthyProducts, round1(c.HealthyPct))
	}

	const thresholds = "Thresholds"
	if _, err := f.NewSheet(thresholds); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	setRow(f, thresholds, 1, "metric", "value")
	setRow(f, thresholds, 2, "protein_min", res.Thresholds.ProteinMin)
	setRow(f, thresholds, 3, "sugar_max", res.Thresholds.SugarMax)
	setRow(f, thresholds, 4, "salt_max", res.Thresholds.SaltMax)
	setRow(f, thresholds, 5, "min_support", res.MinSupport)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	// SetSheetRow only fails on malformed coordinates, which are fixed here.
	_ = f.SetSheetRow(sheet, cell, &values)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
