package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snack-insights-go/internal/types"
)

func TestGenerate_PicksLargestUnderservedCategory(t *testing.T) {
	rec := Generate([]types.CategoryStat{
		{Category: "chocolate", TotalProducts: 500, HealthyProducts: 10, HealthyPct: 2.0},
		{Category: "candy", TotalProducts: 900, HealthyProducts: 9, HealthyPct: 1.0},
		{Category: "nuts & seeds", TotalProducts: 400, HealthyProducts: 200, HealthyPct: 50.0},
	})
	assert.Contains(t, rec.Insight, "candy")
	assert.Contains(t, rec.Action, "candy")
}

func TestGenerate_IgnoresTinyCategories(t *testing.T) {
	rec := Generate([]types.CategoryStat{
		{Category: "jerky & meat snacks", TotalProducts: 5, HealthyProducts: 0, HealthyPct: 0},
	})
	assert.Contains(t, rec.Insight, "No clearly underserved category")
}

func TestGenerate_NoGap(t *testing.T) {
	rec := Generate([]types.CategoryStat{
		{Category: "nuts & seeds", TotalProducts: 400, HealthyProducts: 300, HealthyPct: 75.0},
	})
	assert.Contains(t, rec.Insight, "No clearly underserved category")
	assert.NotEmpty(t, rec.Action)
}

func TestGenerate_Empty(t *testing.T) {
	rec := Generate(nil)
	assert.NotEmpty(t, rec.Insight)
}
