// internal/types/api_models.go
package types

// --------------------------------------------
// Responses served by cmd/api
// --------------------------------------------

// SummaryResponse backs the dashboard metric cards.
type SummaryResponse struct {
	TotalProducts   int        `json:"total_products"`
	TotalCategories int        `json:"total_categories"`
	TotalBrands     int        `json:"total_brands"`
	HealthyProducts int        `json:"healthy_products"`
	HealthyPct      float64    `json:"healthy_pct"`
	Thresholds      Thresholds `json:"thresholds"`
}

// LeaderboardResponse is the ranked brand list, optionally truncated.
type LeaderboardResponse struct {
	Thresholds Thresholds  `json:"thresholds"`
	MinSupport int         `json:"min_support"`
	Brands     []BrandStat `json:"brands"`
}

// CategoryGapResponse lists categories ordered healthiest-last, so the
// biggest market gaps come first.
type CategoryGapResponse struct {
	Thresholds Thresholds     `json:"thresholds"`
	Categories []CategoryStat `json:"categories"`
}

// ProductsResponse is a filtered sample of cleaned products.
type ProductsResponse struct {
	Matched  int       `json:"matched"`
	Returned int       `json:"returned"`
	Products []Product `json:"products"`
}

// Recommendation is the market-gap insight card.
type Recommendation struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}
