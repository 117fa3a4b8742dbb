// Package ports defines the boundary interfaces between the
// deliberation compute core and its external collaborators: the
// persistence layer that feeds it historical records and the
// observability sinks that watch it run.
package ports

import (
	"context"
	"time"

	"github.com/veridex/council/internal/domain"
)

// MetricsComputer dispatches stage records to a protocol-specific
// aggregation routine. Implementations must be pure: identical input
// yields bit-identical output, and no input ever causes an error.
type MetricsComputer interface {
	// Compute aggregates the stages under the requested mode. The
	// result's Kind equals the requested mode, with unrecognized modes
	// falling back to the council kind.
	Compute(mode domain.Mode, stages []domain.StageRecord) domain.ModeMetrics
}

// StageSource is the persistence boundary. The core never reads
// storage directly; collaborators hand it flat rows matching the
// domain record shapes.
type StageSource interface {
	// Stages returns the stage records for a mode, restricted to those
	// created at or after the cutoff when one is given. A nil cutoff
	// means unbounded history.
	Stages(ctx context.Context, mode domain.Mode, since *time.Time) ([]domain.StageRecord, error)

	// Usage returns raw timing/date rows for cross-protocol analytics,
	// restricted by the same optional cutoff.
	Usage(ctx context.Context, since *time.Time) ([]domain.UsageRow, error)
}

// MetricsCollector abstracts the telemetry sink used by the
// instrumentation middleware so the core does not depend on a concrete
// monitoring system.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a named counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets a named gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)
}
