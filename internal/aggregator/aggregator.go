// Package aggregator computes the per-brand and per-category health
// statistics that back the leaderboard and the gap summary.
package aggregator

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"snack-insights-go/internal/types"
)

// Brand fields that carry no usable brand, matched case-insensitively
// after trimming.
var unknownSentinels = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
	"na":      {},
	"none":    {},
}

var titleCaser = cases.Title(language.Und)

// Classify reports whether a product meets the healthy thresholds:
// enough protein, little sugar, little salt.
func Classify(p types.Product, th types.Thresholds) bool {
	return p.Proteins100g >= th.ProteinMin &&
		p.Sugars100g <= th.SugarMax &&
		p.Salt100g <= th.SaltMax
}

// NormalizeBrand reduces a raw brand field to its canonical form. The field
// may be a comma-separated list; the first entry is the parent brand and
// the rest are sub-brand aliases we do not track. Returns ok=false when no
// usable brand remains, which excludes the record from brand aggregation
// only.
func NormalizeBrand(raw string) (string, bool) {
	first := raw
	if i := strings.IndexByte(raw, ','); i >= 0 {
		first = raw[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return "", false
	}
	if _, bad := unknownSentinels[strings.ToLower(first)]; bad {
		return "", false
	}
	return titleCaser.String(first), true
}

// Aggregate groups cleaned products by canonical brand and ranks brands by
// the share of healthy products. Brands with fewer than minSupport listings
// are dropped so one lucky product cannot top the board. The result is
// sorted by healthy percentage descending, ties broken by total products
// descending, then brand name ascending.
func Aggregate(products []types.Product, th types.Thresholds, minSupport int) []types.BrandStat {
	type group struct {
		brand   string
		total   int
		healthy int
	}
	// Case-insensitive merge: "acme" and "ACME" share one key but display
	// the title-cased form.
	groups := map[string]*group{}
	for _, p := range products {
		brand, ok := NormalizeBrand(p.Brand)
		if !ok {
			continue
		}
		key := strings.ToLower(brand)
		g := groups[key]
		if g == nil {
			g = &group{brand: brand}
			groups[key] = g
		}
		g.total++
		if Classify(p, th) {
			g.healthy++
		}
	}

	stats := make([]types.BrandStat, 0, len(groups))
	for _, g := range groups {
		if g.total < minSupport {
			continue
		}
		stats = append(stats, types.BrandStat{
			Brand:           g.brand,
			TotalProducts:   g.total,
			HealthyProducts: g.healthy,
			HealthyPct:      100 * float64(g.healthy) / float64(g.total),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].HealthyPct != stats[j].HealthyPct {
			return stats[i].HealthyPct > stats[j].HealthyPct
		}
		if stats[i].TotalProducts != stats[j].TotalProducts {
			return stats[i].TotalProducts > stats[j].TotalProducts
		}
		return stats[i].Brand < stats[j].Brand
	})
	return stats
}

// AggregateCategories computes the health-gap summary per primary category,
// sorted ascending by healthy percentage so the biggest gaps come first.
// Every cleaned product has a primary category, so no support filter here.
func AggregateCategories(products []types.Product, th types.Thresholds) []types.CategoryStat {
	type group struct {
		total   int
		healthy int
	}
	groups := map[string]*group{}
	for _, p := range products {
		g := groups[p.PrimaryCategory]
		if g == nil {
			g = &group{}
			groups[p.PrimaryCategory] = g
		}
		g.total++
		if Classify(p, th) {
			g.healthy++
		}
	}

	stats := make([]types.CategoryStat, 0, len(groups))
	for cat, g := range groups {
		stats = append(stats, types.CategoryStat{
			Category:        cat,
			TotalProducts:   g.total,
			HealthyProducts: g.healthy,
			HealthyPct:      100 * float64(g.healthy) / float64(g.total),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].HealthyPct != stats[j].HealthyPct {
			return stats[i].HealthyPct < stats[j].HealthyPct
		}
		if stats[i].TotalProducts != stats[j].TotalProducts {
			return stats[i].TotalProducts > stats[j].TotalProducts
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}
