package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.ProteinMin)
	assert.Equal(t, 5.0, cfg.SugarMax)
	assert.Equal(t, 1.5, cfg.SaltMax)
	assert.Equal(t, 5, cfg.MinSupport)
	assert.Equal(t, 0.0, cfg.PlausibleMin)
	assert.Equal(t, 100.0, cfg.PlausibleMax)
	assert.False(t, cfg.DeriveThresholds)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PROTEIN_MIN", "15")
	t.Setenv("SUGAR_MAX", "3")
	t.Setenv("MIN_SUPPORT", "10")
	t.Setenv("DERIVE_THRESHOLDS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.ProteinMin)
	assert.Equal(t, 3.0, cfg.SugarMax)
	assert.Equal(t, 10, cfg.MinSupport)
	assert.True(t, cfg.DeriveThresholds)
}

func TestLoad_RejectsInvertedRange(t *testing.T) {
	t.Setenv("PLAUSIBLE_MIN", "50")
	t.Setenv("PLAUSIBLE_MAX", "10")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadQuantile(t *testing.T) {
	t.Setenv("PROTEIN_QUANTILE", "1.5")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsZeroSupport(t *testing.T) {
	t.Setenv("MIN_SUPPORT", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestThresholds(t *testing.T) {
	cfg := Config{ProteinMin: 12, SugarMax: 4, SaltMax: 1}
	th := cfg.Thresholds()
	assert.Equal(t, 12.0, th.ProteinMin)
	assert.Equal(t, 4.0, th.SugarMax)
	assert.Equal(t, 1.0, th.SaltMax)
}
