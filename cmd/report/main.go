package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"snack-insights-go/internal/config"
	"snack-insights-go/internal/dataset"
	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/pipeline"
	"snack-insights-go/internal/report"
)

func main() {
	_ = godotenv.Load()

	var (
		format  string
		top     int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "report [dataset]",
		Short: "Rank brands by healthy-product percentage",
		Long: `Loads a product nutrition dataset (CSV or XLSX), cleans it, and prints
the brand health leaderboard. Thresholds and the support filter come from
the environment; see internal/config for the full surface.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			path := cfg.DatasetPath
			if len(args) == 1 {
				path = args[0]
			}

			raws, err := dataset.Load(path)
			if err != nil {
				return err
			}
			res := pipeline.Run(raws, cfg)

			out := cmd.OutOrStdout()
			if err := report.RenderLeaderboard(out, report.TopN(res.Brands, top), format); err != nil {
				return err
			}
			if format == "" || format == "table" {
				if err := report.RenderRecommendation(out, res.Recommendation); err != nil {
					return err
				}
			}
			if outPath != "" {
				if err := report.ExportWorkbook(res, outPath); err != nil {
					return err
				}
				logger.New().WithField("path", outPath).Info("workbook exported")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, csv, json")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "limit to the top N brands (0 = all)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also export an XLSX workbook to this path")

	if err := cmd.Execute(); err != nil {
		logger.New().WithError(err).Error("report failed")
		os.Exit(1)
	}
}
