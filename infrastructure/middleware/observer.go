package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/veridex/council/infrastructure/metrics"
	"github.com/veridex/council/internal/domain"
	"github.com/veridex/council/internal/ports"
)

var _ ports.MetricsComputer = (*ObservedComputer)(nil)

// ObservedComputer wraps a MetricsComputer with telemetry: every
// dispatch records a latency histogram and an operation counter, and
// emits an OpenTelemetry span. The wrapped computer stays pure; the
// observer only watches.
type ObservedComputer struct {
	inner     ports.MetricsComputer
	collector ports.MetricsCollector
	tracer    trace.Tracer
}

// NewObservedComputer wraps inner with the given collector. A nil
// collector disables metric recording but keeps tracing.
func NewObservedComputer(inner ports.MetricsComputer, collector ports.MetricsCollector) *ObservedComputer {
	return &ObservedComputer{
		inner:     inner,
		collector: collector,
		tracer:    otel.Tracer("deliberation-compute"),
	}
}

// Compute implements ports.MetricsComputer, delegating to the wrapped
// computer inside a span.
func (oc *ObservedComputer) Compute(mode domain.Mode, stages []domain.StageRecord) domain.ModeMetrics {
	_, span := oc.tracer.Start(context.Background(), "ModeMetrics.Compute",
		trace.WithAttributes(
			attribute.String("deliberation.mode", mode.String()),
			attribute.Int("deliberation.stage_count", len(stages)),
		),
	)
	defer span.End()

	start := time.Now()
	result := oc.inner.Compute(mode, stages)
	elapsed := time.Since(start)

	span.SetAttributes(attribute.String("deliberation.result_kind", result.Kind.String()))

	if oc.collector != nil {
		labels := map[string]string{"mode": mode.String()}
		oc.collector.RecordLatency("compute", elapsed, labels)
		oc.collector.RecordCounter("compute", 1, labels)
		oc.collector.RecordGauge("stage_records", float64(len(stages)), labels)
		if !metrics.Supported(mode) {
			oc.collector.RecordCounter("mode_fallback_total", 1, labels)
		}
	}
	return result
}
