package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snack-insights-go/internal/config"
	"snack-insights-go/internal/types"
)

func testConfig() config.Config {
	return config.Config{
		ProteinMin:   10,
		SugarMax:     5,
		SaltMax:      1.5,
		MinSupport:   2,
		PlausibleMin: 0,
		PlausibleMax: 100,
	}
}

func rawRow(brand, name, sugars, proteins, salt, tags string) types.RawProduct {
	return types.RawProduct{
		Brand: brand, Name: name,
		Sugars: sugars, Proteins: proteins, Salt: salt,
		CategoriesTags: tags,
	}
}

func TestRun(t *testing.T) {
	raws := []types.RawProduct{
		rawRow("Zest", "Protein Bites", "2", "15", "0.3", "en:nuts"),
		rawRow("Zest", "Protein Crunch", "3", "18", "0.4", "en:nuts"),
		rawRow("Sweetco", "Choco Bomb", "45", "4", "0.3", "en:chocolate"),
		rawRow("Sweetco", "Choco Max", "50", "3", "0.2", "en:chocolate"),
		rawRow("Oneoff", "Single Listing", "1", "20", "0.1", "en:nuts"),
		rawRow("Bad", "Unparsable", "trace", "10", "0.1", "en:nuts"),
	}
	res := Run(raws, testConfig())

	assert.Len(t, res.Products, 5, "unparsable row dropped")
	assert.Equal(t, 3, res.HealthyCount())

	// Oneoff is below MinSupport=2, leaving Zest then Sweetco
	require.Len(t, res.Brands, 2)
	assert.Equal(t, "Zest", res.Brands[0].Brand)
	assert.InDelta(t, 100.0, res.Brands[0].HealthyPct, 1e-9)
	assert.Equal(t, "Sweetco", res.Brands[1].Brand)
	assert.InDelta(t, 0.0, res.Brands[1].HealthyPct, 1e-9)

	require.Len(t, res.Categories, 2)
	assert.Equal(t, "chocolate", res.Categories[0].Category, "biggest gap first")

	assert.NotEmpty(t, res.Recommendation.Insight)
}

func TestRun_EmptyAfterCleaning(t *testing.T) {
	raws := []types.RawProduct{
		rawRow("Zest", "Bad", "trace", "x", "", "en:nuts"),
	}
	res := Run(raws, testConfig())
	assert.Empty(t, res.Products)
	assert.Empty(t, res.Brands)
	assert.Empty(t, res.Categories)
	assert.Equal(t, 0, res.HealthyCount())
}

func TestRun_DerivedThresholds(t *testing.T) {
	cfg := testConfig()
	cfg.DeriveThresholds = true
	cfg.ProteinQuantile = 0.5
	cfg.SugarQuantile = 0.5
	cfg.MinSupport = 1

	raws := []types.RawProduct{
		rawRow("A", "p1", "1", "10", "0.1", ""),
		rawRow("A", "p2", "2", "20", "0.1", ""),
		rawRow("A", "p3", "3", "30", "0.1", ""),
	}
	res := Run(raws, cfg)
	assert.InDelta(t, 20.0, res.Thresholds.ProteinMin, 1e-9)
	assert.InDelta(t, 2.0, res.Thresholds.SugarMax, 1e-9)
	assert.InDelta(t, 1.5, res.Thresholds.SaltMax, 1e-9)
}
