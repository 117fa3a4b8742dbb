package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/council/internal/domain"
)

func TestDefaultEngineConfig(t *testing.T) {
	config := DefaultEngineConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, domain.ModeCouncil.String(), config.DefaultMode)
	assert.Equal(t, RangeAll, config.DateRange)
}

func TestEngineConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*EngineConfig)
		expected error
	}{
		{
			name:   "defaults pass",
			mutate: func(c *EngineConfig) {},
		},
		{
			name:     "missing mode",
			mutate:   func(c *EngineConfig) { c.DefaultMode = "" },
			expected: domain.ErrInvalidConfiguration,
		},
		{
			name:     "unknown mode",
			mutate:   func(c *EngineConfig) { c.DefaultMode = "free-for-all" },
			expected: domain.ErrUnknownMode,
		},
		{
			name:     "zero temperature",
			mutate:   func(c *EngineConfig) { c.Temperature = 0 },
			expected: domain.ErrInvalidConfiguration,
		},
		{
			name:     "bad date range",
			mutate:   func(c *EngineConfig) { c.DateRange = "14d" },
			expected: domain.ErrInvalidConfiguration,
		},
		{
			name:     "concurrency too high",
			mutate:   func(c *EngineConfig) { c.MaxConcurrency = 64 },
			expected: domain.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultEngineConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoadEngineConfig(t *testing.T) {
	data := []byte(`
default_mode: tournament
temperature: 0.7
date_range: 30d
max_concurrency: 8
`)

	config, err := LoadEngineConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "tournament", config.DefaultMode)
	assert.InDelta(t, 0.7, config.Temperature, 1e-9)
	assert.Equal(t, Range30d, config.DateRange)
	assert.Equal(t, 8, config.MaxConcurrency)
}

func TestLoadEngineConfig_PartialKeepsDefaults(t *testing.T) {
	config, err := LoadEngineConfig([]byte("default_mode: jury\n"))
	require.NoError(t, err)
	assert.Equal(t, "jury", config.DefaultMode)
	assert.Equal(t, RangeAll, config.DateRange)
	assert.InDelta(t, 1.0, config.Temperature, 1e-9)
}

func TestLoadEngineConfig_Invalid(t *testing.T) {
	_, err := LoadEngineConfig([]byte("date_range: yesterday\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = LoadEngineConfig([]byte("default_mode: [unclosed"))
	assert.Error(t, err)
}

func TestValidateMode(t *testing.T) {
	assert.NoError(t, ValidateMode("council"))
	assert.NoError(t, ValidateMode("redteam"))
	assert.ErrorIs(t, ValidateMode("free-for-all"), domain.ErrUnknownMode)
	assert.ErrorIs(t, ValidateMode(""), domain.ErrUnknownMode)
}

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		preset string
		days   int
	}{
		{preset: Range7d, days: 7},
		{preset: Range30d, days: 30},
		{preset: Range90d, days: 90},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cutoff, err := ResolveDateRange(tt.preset, now)
			require.NoError(t, err)
			require.NotNil(t, cutoff)
			assert.Equal(t, now.AddDate(0, 0, -tt.days), *cutoff)
		})
	}

	t.Run("all is unbounded", func(t *testing.T) {
		cutoff, err := ResolveDateRange(RangeAll, now)
		require.NoError(t, err)
		assert.Nil(t, cutoff)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := ResolveDateRange("fortnight", now)
		assert.ErrorIs(t, err, domain.ErrUnknownDateRange)
	})
}
