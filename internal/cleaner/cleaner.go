// Package cleaner turns raw dataset rows into fully typed products. It is a
// stable filter: surviving records keep their input order, and running it
// over an already-clean set changes nothing.
package cleaner

import (
	"math"
	"strconv"
	"strings"

	"snack-insights-go/internal/category"
	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/types"
)

// Range is the plausible per-100g window for nutrient values.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange covers per-100g macros: nothing below zero, nothing above
// 100g per 100g.
var DefaultRange = Range{Min: 0, Max: 100}

func (r Range) contains(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= r.Min && v <= r.Max
}

// parseNutrient coerces one cell to a number. Empty cells and text like
// "trace" report !ok rather than zero, so the row is dropped, not skewed.
func parseNutrient(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Clean validates and types raw records. Rows missing a product name, any
// nutrient value, or with a nutrient outside the plausible range are
// dropped; everything else survives unchanged with a derived primary
// category attached.
func Clean(raws []types.RawProduct, bounds Range) []types.Product {
	log := logger.New().WithComponent("cleaner")

	out := make([]types.Product, 0, len(raws))
	dropped := 0
	for _, r := range raws {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			dropped++
			continue
		}
		sugars, ok := parseNutrient(r.Sugars)
		if !ok || !bounds.contains(sugars) {
			dropped++
			continue
		}
		proteins, ok := parseNutrient(r.Proteins)
		if !ok || !bounds.contains(proteins) {
			dropped++
			continue
		}
		salt, ok := parseNutrient(r.Salt)
		if !ok || !bounds.contains(salt) {
			dropped++
			continue
		}
		out = append(out, types.Product{
			Name:            name,
			Brand:           r.Brand,
			Sugars100g:      sugars,
			Proteins100g:    proteins,
			Salt100g:        salt,
			CategoriesTags:  r.CategoriesTags,
			PrimaryCategory: category.Primary(r.CategoriesTags),
		})
	}
	log.WithField("kept", len(out)).WithField("dropped", dropped).Info("cleaning complete")
	return out
}
