// Package pipeline runs the full analysis pass: clean, resolve thresholds,
// aggregate, recommend. One synchronous run over an in-memory record set;
// both binaries consume the resulting snapshot.
package pipeline

import (
	"snack-insights-go/internal/aggregator"
	"snack-insights-go/internal/cleaner"
	"snack-insights-go/internal/config"
	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/recommend"
	"snack-insights-go/internal/types"
)

// Result is the snapshot of one pipeline run.
type Result struct {
	Products       []types.Product      `json:"products"`
	Thresholds     types.Thresholds     `json:"thresholds"`
	MinSupport     int                  `json:"min_support"`
	Brands         []types.BrandStat    `json:"brands"`
	Categories     []types.CategoryStat `json:"categories"`
	Recommendation types.Recommendation `json:"recommendation"`
}

// Run executes the pipeline over raw records using cfg for thresholds,
// plausible bounds, and support filtering.
func Run(raws []types.RawProduct, cfg config.Config) Result {
	log := logger.New().WithComponent("pipeline")

	products := cleaner.Clean(raws, cleaner.Range{Min: cfg.PlausibleMin, Max: cfg.PlausibleMax})

	th := cfg.Thresholds()
	if cfg.DeriveThresholds {
		th = aggregator.DeriveThresholds(products, cfg.ProteinQuantile, cfg.SugarQuantile, th)
		log.WithField("protein_min", th.ProteinMin).
			WithField("sugar_max", th.SugarMax).
			Info("thresholds derived from dataset quantiles")
	}

	brands := aggregator.Aggregate(products, th, cfg.MinSupport)
	categories := aggregator.AggregateCategories(products, th)

	log.WithField("products", len(products)).
		WithField("brands", len(brands)).
		WithField("categories", len(categories)).
		Info("pipeline run complete")

	return Result{
		Products:       products,
		Thresholds:     th,
		MinSupport:     cfg.MinSupport,
		Brands:         brands,
		Categories:     categories,
		Recommendation: recommend.Generate(categories),
	}
}

// HealthyCount counts products meeting the snapshot's thresholds.
func (r Result) HealthyCount() int {
	n := 0
	for _, p := range r.Products {
		if aggregator.Classify(p, r.Thresholds) {
			n++
		}
	}
	return n
}
