package aggregator

import (
	"sort"

	"snack-insights-go/internal/types"
)

// DeriveThresholds computes protein and sugar cutoffs from the cleaned data
// itself: protein at the proteinQ quantile (a "high protein" product beats
// most of the market), sugar at the sugarQ quantile. Salt keeps the
// configured maximum since the dataset skews salty across the board.
// With no products the configured base thresholds are returned unchanged.
func DeriveThresholds(products []types.Product, proteinQ, sugarQ float64, base types.Thresholds) types.Thresholds {
	if len(products) == 0 {
		return base
	}
	proteins := make([]float64, len(products))
	sugars := make([]float64, len(products))
	for i, p := range products {
		proteins[i] = p.Proteins100g
		sugars[i] = p.Sugars100g
	}
	return types.Thresholds{
		ProteinMin: quantile(proteins, proteinQ),
		SugarMax:   quantile(sugars, sugarQ),
		SaltMax:    base.SaltMax,
	}
}

// quantile returns the q-quantile of vs with linear interpolation between
// adjacent order statistics. vs must be non-empty; it is not modified.
func quantile(vs []float64, q float64) float64 {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
