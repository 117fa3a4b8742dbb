// Package middleware provides cross-cutting concerns for the
// deliberation compute engine: telemetry collection and tracing
// wrappers around the pure core. The core itself stays free of I/O;
// everything here observes it from the outside.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/veridex/council/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of compute dispatch,
// latency, and stage volume for the deliberation engine.
type PrometheusMetrics struct {
	computeLatency  *prometheus.HistogramVec
	computeCounter  *prometheus.CounterVec
	stageGauges     *prometheus.GaugeVec
	fallbackCounter *prometheus.CounterVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the given registerer. Passing nil
// uses the global Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		computeLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "deliberation_compute_duration_seconds",
				Help:    "Execution time of protocol metric computations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "mode"},
		),
		computeCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deliberation_compute_operations_total",
				Help: "Total number of protocol metric computations performed.",
			},
			[]string{"operation", "mode"},
		),
		stageGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "deliberation_stage_records",
				Help: "Stage record volume observed per computation.",
			},
			[]string{"metric", "mode"},
		),
		fallbackCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deliberation_mode_fallbacks_total",
				Help: "Computations dispatched with an unregistered mode.",
			},
			[]string{"mode"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.computeLatency.WithLabelValues(operation, labels["mode"]).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "mode_fallback_total":
		pm.fallbackCounter.WithLabelValues(labels["mode"]).Add(value)
	default:
		pm.computeCounter.WithLabelValues(metric, labels["mode"]).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.stageGauges.WithLabelValues(metric, labels["mode"]).Set(value)
}
