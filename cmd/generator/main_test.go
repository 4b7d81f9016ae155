package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
)

func parseAndApply(t *testing.T, cfg *config.Config, args ...string) error {
	t.Helper()
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fl := registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return applyFlags(fs, fl, cfg)
}

func TestApplyFlags_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := config.Config{Seed: 42, CatalogSize: 500, RosterSize: 2000, OutputDir: "data/raw"}

	require.NoError(t, parseAndApply(t, &cfg))

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.CatalogSize)
	assert.Equal(t, 2000, cfg.RosterSize)
	assert.Equal(t, "data/raw", cfg.OutputDir)
}

func TestApplyFlags_Overrides(t *testing.T) {
	cfg := config.Config{Seed: 42, CatalogSize: 500}

	require.NoError(t, parseAndApply(t, &cfg,
		"-seed", "7", "-products", "10", "-customers", "25", "-out", "/tmp/run"))

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.CatalogSize)
	assert.Equal(t, 25, cfg.RosterSize)
	assert.Equal(t, "/tmp/run", cfg.OutputDir)
}

func TestApplyFlags_ZeroSeedIsAnOverride(t *testing.T) {
	cfg := config.Config{Seed: 42}

	require.NoError(t, parseAndApply(t, &cfg, "-seed", "0"))

	assert.Equal(t, int64(0), cfg.Seed)
}

func TestApplyFlags_ClampFalseOverridesEnv(t *testing.T) {
	cfg := config.Config{ClampFraudProbability: true}

	require.NoError(t, parseAndApply(t, &cfg, "-clamp=false"))

	assert.False(t, cfg.ClampFraudProbability)
}

func TestApplyFlags_Months(t *testing.T) {
	var cfg config.Config

	require.NoError(t, parseAndApply(t, &cfg, "-months", "2024-10:1850000,2024-11:2100000"))

	require.Len(t, cfg.Months, 2)
	assert.Equal(t, 1850000.0, cfg.Months[0].TargetRevenue)
	assert.Equal(t, 2100000.0, cfg.Months[1].TargetRevenue)
}

func TestApplyFlags_BadMonths(t *testing.T) {
	var cfg config.Config

	err := parseAndApply(t, &cfg, "-months", "october:lots")

	assert.Error(t, err)
	assert.Empty(t, cfg.Months)
}
