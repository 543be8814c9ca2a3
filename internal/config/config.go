// Package config holds the full configuration surface of the pipeline and
// the two binaries. Everything is read from the environment (after godotenv
// has loaded .env) through envconfig, so defaults live in struct tags.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"snack-insights-go/internal/types"
)

// Config is loaded once at startup with Load.
//
// Threshold defaults follow common food-labelling guidance: 10g protein per
// 100g is a meaningful protein source, 5g sugar per 100g is the usual
// "low sugar" cutoff, 1.5g salt per 100g is the high-salt boundary.
type Config struct {
	// Dataset source. Path is required unless URL is set, in which case the
	// file is fetched to Path first.
	DatasetPath string `envconfig:"DATASET_PATH" default:"data/products.csv"`
	DatasetURL  string `envconfig:"DATASET_URL"`

	// Healthy-product thresholds (grams per 100g).
	ProteinMin float64 `envconfig:"PROTEIN_MIN" default:"10"`
	SugarMax   float64 `envconfig:"SUGAR_MAX" default:"5"`
	SaltMax    float64 `envconfig:"SALT_MAX" default:"1.5"`

	// DeriveThresholds switches protein/sugar cutoffs to dataset quantiles
	// (protein p70, sugar p30 by default) instead of the fixed values above.
	// Salt always uses SaltMax.
	DeriveThresholds bool    `envconfig:"DERIVE_THRESHOLDS" default:"false"`
	ProteinQuantile  float64 `envconfig:"PROTEIN_QUANTILE" default:"0.70"`
	SugarQuantile    float64 `envconfig:"SUGAR_QUANTILE" default:"0.30"`

	// MinSupport drops brands with fewer listings from the leaderboard.
	MinSupport int `envconfig:"MIN_SUPPORT" default:"5"`

	// Plausible per-100g range for nutrient values; rows outside are dropped.
	PlausibleMin float64 `envconfig:"PLAUSIBLE_MIN" default:"0"`
	PlausibleMax float64 `envconfig:"PLAUSIBLE_MAX" default:"100"`

	Port string `envconfig:"PORT" default:"8080"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.PlausibleMin > c.PlausibleMax {
		return fmt.Errorf("plausible range inverted: [%v, %v]", c.PlausibleMin, c.PlausibleMax)
	}
	if c.MinSupport < 1 {
		return fmt.Errorf("min support must be >= 1, got %d", c.MinSupport)
	}
	for _, q := range []float64{c.ProteinQuantile, c.SugarQuantile} {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile out of [0,1]: %v", q)
		}
	}
	return nil
}

// Thresholds returns the fixed threshold set from configuration.
func (c Config) Thresholds() types.Thresholds {
	return types.Thresholds{
		ProteinMin: c.ProteinMin,
		SugarMax:   c.SugarMax,
		SaltMax:    c.SaltMax,
	}
}
