// Package metric contains Prometheus instrumentation for index construction
// and grounding queries.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all grounding-related metrics.
type Metrics struct {
	IndexEntries   *prometheus.CounterVec
	IndexSkipped   *prometheus.CounterVec
	GroundQueries  prometheus.Counter
	GroundMatches  prometheus.Counter
	GroundMisses   prometheus.Counter
	IndexBuildTime prometheus.Histogram
}

// NewMetrics creates a Metrics instance with all grounding metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		IndexEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pyobo",
				Subsystem: "index",
				Name:      "entries_total",
				Help:      "Total number of lexical index entries built",
			},
			[]string{"prefix", "status"},
		),

		IndexSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pyobo",
				Subsystem: "index",
				Name:      "namespaces_skipped_total",
				Help:      "Total number of namespaces skipped during index construction",
			},
			[]string{"prefix"},
		),

		GroundQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pyobo",
				Subsystem: "ground",
				Name:      "queries_total",
				Help:      "Total number of grounding queries served",
			},
		),

		GroundMatches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pyobo",
				Subsystem: "ground",
				Name:      "matches_total",
				Help:      "Total number of matches returned across all queries",
			},
		),

		GroundMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pyobo",
				Subsystem: "ground",
				Name:      "misses_total",
				Help:      "Total number of queries that matched nothing",
			},
		),

		IndexBuildTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "pyobo",
				Subsystem: "index",
				Name:      "build_duration_seconds",
				Help:      "Lexical index build duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register registers all metrics on the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.IndexEntries,
		m.IndexSkipped,
		m.GroundQueries,
		m.GroundMatches,
		m.GroundMisses,
		m.IndexBuildTime,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
