package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW_MINUTES", "")
	t.Setenv("SEED_SAMPLE_DATA", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100, cfg.RateLimitRequest)
	assert.Equal(t, 1, cfg.RateLimitWindow)
	assert.False(t, cfg.SeedSampleData)
}

func TestLoadRateLimitOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "30")
	t.Setenv("RATE_LIMIT_WINDOW_MINUTES", "5")

	cfg := Load()

	assert.Equal(t, 30, cfg.RateLimitRequest)
	assert.Equal(t, 5, cfg.RateLimitWindow)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 100, cfg.RateLimitRequest)
}
