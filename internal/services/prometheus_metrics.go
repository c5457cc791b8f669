package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationRuns     *prometheus.CounterVec
	aggregationDuration prometheus.Histogram
	cacheRequests       *prometheus.CounterVec
	sourceFailures      *prometheus.CounterVec
	trendRequests       *prometheus.CounterVec
	anomaliesDetected   prometheus.Counter
	narrativeFallbacks  prometheus.Counter
	netWorthComputed    prometheus.Histogram
	historySamples      prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_runs_total",
				Help: "Total number of overview aggregation runs",
			},
			[]string{"status", "source"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Overview aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cacheRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_requests_total",
				Help: "Total number of cache lookups by view and outcome",
			},
			[]string{"view", "outcome"},
		),
		sourceFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_failures_total",
				Help: "Total number of upstream source fetch failures",
			},
			[]string{"source"},
		),
		trendRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trend_requests_total",
				Help: "Total number of trend analyses by type",
			},
			[]string{"type"},
		),
		anomaliesDetected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "spending_anomalies_detected_total",
				Help: "Total number of anomalous spending days flagged",
			},
		),
		narrativeFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "narrative_fallbacks_total",
				Help: "Total number of times rule-based insights replaced the narrative generator",
			},
		),
		netWorthComputed: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "net_worth_computed",
				Help:    "Distribution of computed net worth values in base currency units",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
		),
		historySamples: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "net_worth_history_samples",
				Help: "Net worth history samples held for the most recently aggregated user",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "aggregation.completed":
		m.aggregationRuns.WithLabelValues("success", tags["source"]).Inc()
	case "aggregation.failed":
		m.aggregationRuns.WithLabelValues("failed", tags["source"]).Inc()
	case "cache.hit":
		m.cacheRequests.WithLabelValues(tags["view"], "hit").Inc()
	case "cache.miss":
		m.cacheRequests.WithLabelValues(tags["view"], "miss").Inc()
	case "source.failure":
		m.sourceFailures.WithLabelValues(tags["source"]).Inc()
	case "trend.analyzed":
		m.trendRequests.WithLabelValues(tags["type"]).Inc()
	case "anomaly.detected":
		m.anomaliesDetected.Inc()
	case "narrative.fallback":
		m.narrativeFallbacks.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "aggregation.duration":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "net_worth.computed":
		m.netWorthComputed.Observe(value)
	case "history.samples":
		m.historySamples.Set(value)
	}
}
