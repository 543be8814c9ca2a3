// Package report renders pipeline results for the CLI and exports them as
// workbook files for downstream dashboards.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"snack-insights-go/internal/types"
)

// RenderLeaderboard writes the brand leaderboard to w in the requested
// format: "table" (default), "csv", or "json".
func RenderLeaderboard(w io.Writer, brands []types.BrandStat, format string) error {
	switch format {
	case "json":
		return renderJSON(w, brands)
	case "csv":
		return renderCSV(w, brands)
	case "", "table":
		return renderTable(w, brands)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderTable(w io.Writer, brands []types.BrandStat) error {
	if len(brands) == 0 {
		_, err := fmt.Fprintln(w, "(0 brands)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Brand", "Products", "Healthy", "Healthy %"})
	for i, b := range brands {
		t.AppendRow(table.Row{i + 1, b.Brand, b.TotalProducts, b.HealthyProducts,
			fmt.Sprintf("%.1f", b.HealthyPct)})
	}
	t.Render()
	_, err := fmt.Fprintf(w, "(%d brands)\n", len(brands))
	return err
}

func renderJSON(w io.Writer, brands []types.BrandStat) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(brands)
}

func renderCSV(w io.Writer, brands []types.BrandStat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"brand", "total_products", "healthy_products", "healthy_pct"}); err != nil {
		return err
	}
	for _, b := range brands {
		rec := []string{
			b.Brand,
			strconv.Itoa(b.TotalProducts),
			strconv.Itoa(b.HealthyProducts),
			strconv.FormatFloat(b.HealthyPct, 'f', 1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderRecommendation prints the insight card under the leaderboard.
func RenderRecommendation(w io.Writer, rec types.Recommendation) error {
	_, err := fmt.Fprintf(w, "\nInsight: %s\nAction:  %s\nImpact:  %s\n",
		rec.Insight, rec.Action, rec.Impact)
	return err
}

// TopN returns at most n leading brands; n <= 0 means all.
func TopN(brands []types.BrandStat, n int) []types.BrandStat {
	if n <= 0 || n >= len(brands) {
		return brands
	}
	return brands[:n]
}
