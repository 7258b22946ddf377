package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks analytics engine activity. Registration happens on the
// default registry via promauto; callers expose it however they like
// (or not at all; the engine accepts a nil *Metrics).
type Metrics struct {
	AnalysesTotal     *prometheus.CounterVec
	PostsAnalyzed     prometheus.Counter
	AnalysisDuration  *prometheus.HistogramVec
	InsightsGenerated *prometheus.CounterVec
}

// New creates and registers the engine metrics.
func New() *Metrics {
	return &Metrics{
		AnalysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_analyses_total",
				Help: "Total analytics computations by kind",
			},
			[]string{"kind"},
		),
		PostsAnalyzed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_posts_analyzed_total",
				Help: "Total posts fed through the analytics engine",
			},
		),
		AnalysisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_analysis_duration_seconds",
				Help:    "Analytics computation duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"kind"},
		),
		InsightsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_insights_generated_total",
				Help: "Total insights emitted by the rule engine, by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveAnalysis records one completed computation. Nil-safe so the engine
// can run uninstrumented in tests.
func (m *Metrics) ObserveAnalysis(kind string, posts int, started time.Time) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(kind).Inc()
	m.PostsAnalyzed.Add(float64(posts))
	m.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// ObserveInsight records one emitted insight.
func (m *Metrics) ObserveInsight(kind string) {
	if m == nil {
		return
	}
	m.InsightsGenerated.WithLabelValues(kind).Inc()
}
