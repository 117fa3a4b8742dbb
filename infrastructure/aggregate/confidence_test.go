package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/council/internal/domain"
)

func answers(confidences ...float64) []domain.ConfidenceAnswer {
	out := make([]domain.ConfidenceAnswer, len(confidences))
	for i, c := range confidences {
		out[i] = domain.ConfidenceAnswer{Model: string(rune('a' + i)), RawConfidence: c}
	}
	return out
}

func TestWeigh_SumsToOne(t *testing.T) {
	temperatures := []float64{0.01, 0.1, 0.5, 1.0, 5.0}
	inputs := [][]float64{
		{0.5},
		{0.2, 0.8},
		{0.1, 0.5, 0.9},
		{0.33, 0.33, 0.34, 0.99},
	}

	for _, temp := range temperatures {
		for _, confidences := range inputs {
			weights := Weigh(answers(confidences...), temp)
			var sum float64
			for _, w := range weights {
				sum += w.NormalizedWeight
			}
			assert.InDelta(t, 1.0, sum, 1e-6, "temperature %v confidences %v", temp, confidences)
		}
	}
}

func TestWeigh_MonotoneInConfidence(t *testing.T) {
	for _, temp := range []float64{0.05, 0.5, 1.0, 10.0} {
		weights := Weigh(answers(0.2, 0.9, 0.4), temp)
		require.Len(t, weights, 3)
		assert.Greater(t, weights[1].NormalizedWeight, weights[0].NormalizedWeight)
		assert.Greater(t, weights[1].NormalizedWeight, weights[2].NormalizedWeight)
		assert.Greater(t, weights[2].NormalizedWeight, weights[0].NormalizedWeight)
	}
}

func TestWeigh_TemperatureSharpens(t *testing.T) {
	// Lower temperature concentrates weight on the most confident
	// participant; higher temperature flattens toward uniform.
	sharp := Weigh(answers(0.2, 0.9), 0.1)
	flat := Weigh(answers(0.2, 0.9), 10.0)

	assert.Greater(t, sharp[1].NormalizedWeight, flat[1].NormalizedWeight)
	assert.Less(t, sharp[0].NormalizedWeight, flat[0].NormalizedWeight)
}

func TestWeigh_DegenerateTemperature(t *testing.T) {
	weights := Weigh(answers(0.1, 0.9, 0.5, 0.7), 0.0005)

	require.Len(t, weights, 4)
	for _, w := range weights {
		assert.InDelta(t, 0.25, w.NormalizedWeight, 1e-9)
		assert.InDelta(t, 25.0, w.WeightPercent, 1e-9)
	}
}

func TestWeigh_SingleParticipant(t *testing.T) {
	weights := Weigh(answers(0.42), 1.0)

	require.Len(t, weights, 1)
	assert.InDelta(t, 1.0, weights[0].NormalizedWeight, 1e-9)
	assert.InDelta(t, 100.0, weights[0].WeightPercent, 1e-9)
}

func TestWeigh_OutlierFlags(t *testing.T) {
	weights := Weigh(answers(0.96, 0.95, 0.10, 0.09, 0.5), 1.0)

	require.Len(t, weights, 5)
	assert.True(t, weights[0].IsOutlier, "0.96 is above the high threshold")
	assert.False(t, weights[1].IsOutlier, "0.95 is exactly at the boundary")
	assert.False(t, weights[2].IsOutlier, "0.10 is exactly at the boundary")
	assert.True(t, weights[3].IsOutlier, "0.09 is below the low threshold")
	assert.False(t, weights[4].IsOutlier)
}

func TestWeigh_PreservesInputOrder(t *testing.T) {
	input := answers(0.9, 0.1, 0.5)
	weights := Weigh(input, 1.0)

	require.Len(t, weights, 3)
	for i, w := range weights {
		assert.Equal(t, input[i].Model, w.Model)
		assert.Equal(t, input[i].RawConfidence, w.RawConfidence)
	}
}

func TestWeigh_EmptyInput(t *testing.T) {
	assert.Empty(t, Weigh(nil, 1.0))
}

func TestWeigh_WeightPercentRounding(t *testing.T) {
	weights := Weigh(answers(0.5, 0.5, 0.5), 1.0)

	require.Len(t, weights, 3)
	for _, w := range weights {
		assert.InDelta(t, 33.33, w.WeightPercent, 1e-9)
	}
}

func TestNewConfidenceWeighter(t *testing.T) {
	tests := []struct {
		name        string
		config      WeighterConfig
		expectError bool
	}{
		{name: "valid", config: WeighterConfig{Temperature: 0.7}},
		{name: "default config", config: DefaultWeighterConfig()},
		{name: "zero temperature rejected", config: WeighterConfig{Temperature: 0}, expectError: true},
		{name: "negative temperature rejected", config: WeighterConfig{Temperature: -1}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weigher, err := NewConfidenceWeighter(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.config.Temperature, weigher.Temperature())
		})
	}
}

func TestConfidenceWeighter_Weigh(t *testing.T) {
	weigher, err := NewConfidenceWeighter(WeighterConfig{Temperature: 1.0})
	require.NoError(t, err)

	weights := weigher.Weigh(answers(0.3, 0.7))
	require.Len(t, weights, 2)
	assert.Greater(t, weights[1].NormalizedWeight, weights[0].NormalizedWeight)
}
