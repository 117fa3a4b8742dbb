package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridex/council/infrastructure/metrics"
	"github.com/veridex/council/internal/domain"
	"github.com/veridex/council/internal/ports"
)

// stubSource serves canned stage and usage data, recording the cutoff
// it was queried with.
type stubSource struct {
	stages     map[domain.Mode][]domain.StageRecord
	usage      []domain.UsageRow
	stagesErr  error
	usageErr   error
	lastCutoff *time.Time
}

var _ ports.StageSource = (*stubSource)(nil)

func (s *stubSource) Stages(_ context.Context, mode domain.Mode, since *time.Time) ([]domain.StageRecord, error) {
	s.lastCutoff = since
	if s.stagesErr != nil {
		return nil, s.stagesErr
	}
	return s.stages[mode], nil
}

func (s *stubSource) Usage(_ context.Context, since *time.Time) ([]domain.UsageRow, error) {
	s.lastCutoff = since
	if s.usageErr != nil {
		return nil, s.usageErr
	}
	return s.usage, nil
}

func newTestEngine(t *testing.T, source *stubSource) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultEngineConfig(), metrics.NewComputer(), source)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_Validation(t *testing.T) {
	source := &stubSource{}
	computer := metrics.NewComputer()

	t.Run("bad config", func(t *testing.T) {
		config := DefaultEngineConfig()
		config.DefaultMode = "free-for-all"
		_, err := NewEngine(config, computer, source)
		assert.ErrorIs(t, err, domain.ErrUnknownMode)
	})

	t.Run("nil computer", func(t *testing.T) {
		_, err := NewEngine(DefaultEngineConfig(), nil, source)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewEngine(DefaultEngineConfig(), computer, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})
}

func TestEngine_ComputeMode(t *testing.T) {
	source := &stubSource{stages: map[domain.Mode][]domain.StageRecord{
		domain.ModeVote: {
			{StageType: "vote", ParsedData: map[string]any{"choice": "yes"}},
			{StageType: "vote", ParsedData: map[string]any{"choice": "yes"}},
		},
	}}
	engine := newTestEngine(t, source)

	result, err := engine.ComputeMode(context.Background(), domain.ModeVote)
	require.NoError(t, err)
	require.NotNil(t, result.Vote)
	assert.Equal(t, 2, result.Vote.TotalVotes)
	assert.Nil(t, source.lastCutoff, "the default range is unbounded")
}

func TestEngine_ComputeMode_StrictValidation(t *testing.T) {
	engine := newTestEngine(t, &stubSource{})

	_, err := engine.ComputeMode(context.Background(), domain.Mode("free-for-all"))
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestEngine_ComputeMode_BoundedRange(t *testing.T) {
	source := &stubSource{}
	config := DefaultEngineConfig()
	config.DateRange = Range7d
	engine, err := NewEngine(config, metrics.NewComputer(), source)
	require.NoError(t, err)

	_, err = engine.ComputeMode(context.Background(), domain.ModeCouncil)
	require.NoError(t, err)
	require.NotNil(t, source.lastCutoff)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -7), *source.lastCutoff, time.Minute)
}

func TestEngine_ComputeMode_SourceError(t *testing.T) {
	wantErr := errors.New("store offline")
	engine := newTestEngine(t, &stubSource{stagesErr: wantErr})

	_, err := engine.ComputeMode(context.Background(), domain.ModeCouncil)
	assert.ErrorIs(t, err, wantErr)
}

func TestEngine_ComputeModes(t *testing.T) {
	source := &stubSource{stages: map[domain.Mode][]domain.StageRecord{
		domain.ModeVote: {{StageType: "vote", ParsedData: map[string]any{"choice": "a"}}},
		domain.ModeJury: {{StageType: "verdict", ParsedData: map[string]any{"verdict": "ok"}}},
	}}
	engine := newTestEngine(t, source)

	modes := []domain.Mode{domain.ModeVote, domain.ModeJury, domain.ModeRelay}
	results, err := engine.ComputeModes(context.Background(), modes)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 1, results[domain.ModeVote].Vote.TotalVotes)
	assert.Equal(t, 1, results[domain.ModeJury].Jury.Verdicts)
	assert.Zero(t, results[domain.ModeRelay].Relay.Legs)
}

func TestEngine_ComputeModes_RejectsUnknownBeforeFanOut(t *testing.T) {
	source := &stubSource{}
	engine := newTestEngine(t, source)

	_, err := engine.ComputeModes(context.Background(), []domain.Mode{
		domain.ModeVote, domain.Mode("free-for-all"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
	assert.Nil(t, source.lastCutoff, "no stages are loaded when validation fails")
}

func TestEngine_WeighConfidence(t *testing.T) {
	engine := newTestEngine(t, &stubSource{})

	weights := engine.WeighConfidence([]domain.ConfidenceAnswer{
		{Model: "m1", RawConfidence: 0.2},
		{Model: "m2", RawConfidence: 0.8},
	})
	require.Len(t, weights, 2)
	assert.Greater(t, weights[1].NormalizedWeight, weights[0].NormalizedWeight)
}

func TestEngine_Overview(t *testing.T) {
	source := &stubSource{usage: []domain.UsageRow{
		{Mode: domain.ModeVote, Model: "m1", ResponseTimeMs: 100,
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		{Mode: domain.ModeVote, Model: "m2", ResponseTimeMs: 300,
			CreatedAt: time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)},
		{Mode: domain.ModeJury, Model: "m1", ResponseTimeMs: 200,
			CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)},
	}}
	engine := newTestEngine(t, source)

	overview, err := engine.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Daily, 2)
	assert.Equal(t, "2026-08-01", overview.Daily[0].Date)
	assert.Equal(t, 2, overview.Daily[0].Count)

	assert.Equal(t, 3, overview.Summary.TotalSamples)
	assert.InDelta(t, 200.0, overview.Summary.AvgResponseTimeMs, 1e-9)

	require.Len(t, overview.Modes, 2)
	assert.Equal(t, domain.ModeVote, overview.Modes[0].Mode)

	require.Len(t, overview.Leaderboard, 2)
	assert.Equal(t, "m1", overview.Leaderboard[0].Model)
}

func TestEngine_Overview_SourceError(t *testing.T) {
	wantErr := errors.New("store offline")
	engine := newTestEngine(t, &stubSource{usageErr: wantErr})

	_, err := engine.Overview(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
