package types

// RawProduct is one untyped row from the source dataset. Every field may be
// empty; nutrient values are kept as the original cell text until cleaning.
type RawProduct struct {
	Brand          string `json:"brand_name,omitempty"`
	Name           string `json:"product_name,omitempty"`
	Sugars         string `json:"sugars_100g,omitempty"`
	Proteins       string `json:"proteins_100g,omitempty"`
	Salt           string `json:"salt_100g,omitempty"`
	CategoriesTags string `json:"categories_tags,omitempty"`
}

// Product is a cleaned record: name non-empty, all three nutrients parsed
// and inside the plausible per-100g range.
type Product struct {
	Name            string  `json:"product_name"`
	Brand           string  `json:"brand_name,omitempty"` // raw field, may be a comma list
	Sugars100g      float64 `json:"sugars_100g"`
	Proteins100g    float64 `json:"proteins_100g"`
	Salt100g        float64 `json:"salt_100g"`
	CategoriesTags  string  `json:"categories_tags,omitempty"`
	PrimaryCategory string  `json:"primary_category"`
}

// BrandStat is the per-brand aggregate behind the leaderboard.
type BrandStat struct {
	Brand           string  `json:"brand"`
	TotalProducts   int     `json:"total_products"`
	HealthyProducts int     `json:"healthy_products"`
	HealthyPct      float64 `json:"healthy_pct"`
}

// CategoryStat mirrors BrandStat, keyed by primary category.
type CategoryStat struct {
	Category        string  `json:"category"`
	TotalProducts   int     `json:"total_products"`
	HealthyProducts int     `json:"healthy_products"`
	HealthyPct      float64 `json:"healthy_pct"`
}

// Thresholds define what counts as a healthy product.
type Thresholds struct {
	ProteinMin float64 `json:"protein_min"`
	SugarMax   float64 `json:"sugar_max"`
	SaltMax    float64 `json:"salt_max"`
}
