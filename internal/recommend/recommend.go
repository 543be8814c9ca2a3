package recommend

import (
	"fmt"

	"snack-insights-go/internal/types"
)

// gapCeiling is the healthy share below which a category counts as
// underserved.
const gapCeiling = 15.0

// minCategorySize keeps tiny categories from being declared the big
// opportunity.
const minCategorySize = 30

// Generate picks the market-gap insight: the largest category whose healthy
// share sits under the ceiling. Demand exists (lots of listings) but almost
// nothing on the shelf meets the health criteria.
func Generate(categories []types.CategoryStat) types.Recommendation {
	var gap *types.CategoryStat
	for i := range categories {
		c := &categories[i]
		if c.HealthyPct >= gapCeiling || c.TotalProducts < minCategorySize {
			continue
		}
		if gap == nil || c.TotalProducts > gap.TotalProducts {
			gap = c
		}
	}
	if gap != nil {
		return types.Recommendation{
			Insight: fmt.Sprintf("Only %.1f%% of %d %s products are high-protein, low-sugar, low-salt",
				gap.HealthyPct, gap.TotalProducts, gap.Category),
			Action: fmt.Sprintf("Launch a high-protein, low-sugar product in the %s category", gap.Category),
			Impact: "Largest underserved segment: high demand, least healthy competition",
		}
	}
	return types.Recommendation{
		Insight: "No clearly underserved category in the current dataset",
		Action:  "Re-run with a broader product extract before committing to a launch",
		Impact:  "Low confidence in any single market gap",
	}
}
