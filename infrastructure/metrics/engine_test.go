package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/council/internal/domain"
)

func TestCompute_KindMatchesRequestedMode(t *testing.T) {
	for _, mode := range Modes() {
		result := Compute(mode, nil)
		assert.Equal(t, mode, result.Kind, "mode %s", mode)
	}
}

func TestCompute_UnknownModeFallsBackToCouncil(t *testing.T) {
	result := Compute(domain.Mode("free-for-all"), nil)
	assert.Equal(t, domain.ModeCouncil, result.Kind)
	require.NotNil(t, result.Council)
}

func TestCompute_EmptyInputYieldsZeroValues(t *testing.T) {
	// No protocol routine may fail or emit non-zero statistics for an
	// empty history.
	for _, mode := range Modes() {
		assert.NotPanics(t, func() {
			result := Compute(mode, []domain.StageRecord{})
			assert.Equal(t, mode, result.Kind)
		}, "mode %s", mode)
	}
}

func TestCompute_IgnoresUnrecognizedStageTypes(t *testing.T) {
	stages := []domain.StageRecord{
		{StageType: "mystery", ParsedData: map[string]any{"choice": "x"}},
		{StageType: stageVote, ParsedData: map[string]any{"choice": "x"}},
	}

	result := Compute(domain.ModeVote, stages)
	require.NotNil(t, result.Vote)
	assert.Equal(t, 1, result.Vote.TotalVotes)
}

func TestCompute_Idempotent(t *testing.T) {
	stages := []domain.StageRecord{
		{MessageID: "m1", StageType: stageVote, ParsedData: map[string]any{"choice": "yes"}},
		{MessageID: "m1", StageType: stageVote, ParsedData: map[string]any{"choice": "no"}},
		{MessageID: "m1", StageType: stageVoteResult, ParsedData: map[string]any{"tiebreaker_used": true}},
	}

	first := Compute(domain.ModeVote, stages)
	second := Compute(domain.ModeVote, stages)
	assert.Equal(t, first, second)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(domain.ModeCouncil))
	assert.True(t, Supported(domain.ModeRedteam))
	assert.False(t, Supported(domain.Mode("free-for-all")))
}

func TestModes_CoversAllProtocols(t *testing.T) {
	modes := Modes()
	assert.Len(t, modes, 15)
	for i := 1; i < len(modes); i++ {
		assert.Less(t, modes[i-1], modes[i], "modes are returned in lexical order")
	}
}

func TestComputer_ImplementsBoundary(t *testing.T) {
	computer := NewComputer()
	result := computer.Compute(domain.ModeJury, nil)
	assert.Equal(t, domain.ModeJury, result.Kind)
}
