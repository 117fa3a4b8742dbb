package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/veridex/council/infrastructure/aggregate"
	"github.com/veridex/council/infrastructure/analytics"
	"github.com/veridex/council/internal/domain"
	"github.com/veridex/council/internal/ports"
)

// Engine is the facade over the deliberation compute core. It owns no
// mutable state beyond its validated configuration and wired
// collaborators, so a single Engine may serve any number of concurrent
// callers.
type Engine struct {
	config   EngineConfig
	computer ports.MetricsComputer
	source   ports.StageSource
	weigher  *aggregate.ConfidenceWeighter
}

// Overview is the cross-protocol analytics rollup assembled from raw
// usage rows.
type Overview struct {
	// Daily is the per-UTC-date message histogram, ascending by date.
	Daily []analytics.DailyCount `json:"daily"`

	// Summary is the sample-count-weighted response-time summary.
	Summary analytics.Summary `json:"summary"`

	// Modes is the protocol usage distribution, descending by count.
	Modes []analytics.ModeShare `json:"modes"`

	// Leaderboard is the cross-mode model standing, descending by
	// score.
	Leaderboard []analytics.LeaderboardEntry `json:"leaderboard"`
}

// NewEngine validates the configuration and wires the facade. The
// computer dispatches protocol metrics (typically the dispatch-table
// computer, optionally wrapped by observability middleware); the
// source is the persistence boundary.
func NewEngine(config EngineConfig, computer ports.MetricsComputer, source ports.StageSource) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if computer == nil {
		return nil, fmt.Errorf("%w: metrics computer cannot be nil", domain.ErrInvalidConfiguration)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: stage source cannot be nil", domain.ErrInvalidConfiguration)
	}

	weigher, err := aggregate.NewConfidenceWeighter(aggregate.WeighterConfig{
		Temperature: config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:   config,
		computer: computer,
		source:   source,
		weigher:  weigher,
	}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() EngineConfig { return e.config }

// ComputeMode fetches the mode's stage history inside the configured
// date range and dispatches it. The mode is strictly validated here;
// pass records straight to the computer to rely on the council
// fallback instead.
func (e *Engine) ComputeMode(ctx context.Context, mode domain.Mode) (domain.ModeMetrics, error) {
	if err := ValidateMode(mode.String()); err != nil {
		return domain.ModeMetrics{}, err
	}
	cutoff, err := ResolveDateRange(e.config.DateRange, time.Now())
	if err != nil {
		return domain.ModeMetrics{}, err
	}

	stages, err := e.source.Stages(ctx, mode, cutoff)
	if err != nil {
		return domain.ModeMetrics{}, fmt.Errorf("failed to load stages for mode %s: %w", mode, err)
	}
	return e.computer.Compute(mode, stages), nil
}

// ComputeModes computes metrics for several protocols concurrently.
// The computations themselves are pure and need no synchronization;
// the fan-out only parallelizes stage loading and dispatch, limited by
// the configured concurrency.
func (e *Engine) ComputeModes(ctx context.Context, modes []domain.Mode) (map[domain.Mode]domain.ModeMetrics, error) {
	for _, mode := range modes {
		if err := ValidateMode(mode.String()); err != nil {
			return nil, err
		}
	}

	results := make(map[domain.Mode]domain.ModeMetrics, len(modes))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxConcurrency)

	for _, mode := range modes {
		mode := mode
		g.Go(func() error {
			metrics, err := e.ComputeMode(gctx, mode)
			if err != nil {
				return err
			}
			mu.Lock()
			results[mode] = metrics
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WeighConfidence normalizes self-reported confidences with the
// engine's configured temperature.
func (e *Engine) WeighConfidence(answers []domain.ConfidenceAnswer) []domain.ConfidenceWeight {
	return e.weigher.Weigh(answers)
}

// Overview assembles the cross-protocol analytics rollup from the
// usage rows inside the configured date range.
func (e *Engine) Overview(ctx context.Context) (*Overview, error) {
	cutoff, err := ResolveDateRange(e.config.DateRange, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := e.source.Usage(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage rows: %w", err)
	}

	return &Overview{
		Daily:       analytics.DailyUsage(rows),
		Summary:     analytics.WeightedSummary(analytics.ModelTimeSamples(rows)),
		Modes:       analytics.ModeDistributionFromRows(rows),
		Leaderboard: analytics.Leaderboard(rows),
	}, nil
}
