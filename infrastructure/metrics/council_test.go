package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/council/internal/domain"
)

func TestComputeCouncil(t *testing.T) {
	stages := []domain.StageRecord{
		{StageType: stageResponse, Model: "m1", ResponseTimeMs: 100},
		{StageType: stageResponse, Model: "m2", ResponseTimeMs: 300},
		{StageType: stageRanking, Model: "m1", ResponseTimeMs: 200},
		{StageType: "other", Model: "m3", ResponseTimeMs: 9000},
	}

	result := Compute(domain.ModeCouncil, stages)
	require.NotNil(t, result.Council)
	m := result.Council

	assert.Equal(t, 2, m.Responses)
	assert.Equal(t, 1, m.Rankings)
	assert.Equal(t, 2, m.Models, "unrecognized stages contribute no models")
	assert.InDelta(t, 200.0, m.AvgResponseTimeMs, 1e-9)
}

func TestComputeCouncil_Empty(t *testing.T) {
	result := Compute(domain.ModeCouncil, nil)
	require.NotNil(t, result.Council)
	assert.Zero(t, result.Council.Responses)
	assert.Zero(t, result.Council.AvgResponseTimeMs)
}

func TestDistribution(t *testing.T) {
	entries := distribution([]string{"b", "a", "b", "c", "b", "a"})
	assert.Equal(t, []domain.CountEntry{
		{Value: "b", Count: 3},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
	}, entries)
}

func TestWinRates_TieStable(t *testing.T) {
	// m1 and m2 both finish 1-1; the first encountered stays first.
	rates := winRates([][2]string{{"m1", "m2"}, {"m2", "m1"}})
	require.Len(t, rates, 2)
	assert.Equal(t, "m1", rates[0].Model)
	assert.Equal(t, "m2", rates[1].Model)
}
