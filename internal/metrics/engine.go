package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showdex",
			Name:      "searches_total",
			Help:      "Total number of searches by cache outcome",
		},
		[]string{"result"}, // "hit" / "miss" / "blank"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "showdex",
			Name:      "search_duration_seconds",
			Help:      "Scoring and ranking duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	ScoringFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "showdex",
			Name:      "scoring_failures_total",
			Help:      "Records skipped because scoring panicked",
		},
	)

	SuggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showdex",
			Name:      "suggestions_total",
			Help:      "Suggestions generated by source",
		},
		[]string{"kind"}, // "history" / "record" / "category"
	)

	HistoryStoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showdex",
			Name:      "history_store_errors_total",
			Help:      "History persistence failures, recovered locally",
		},
		[]string{"op"}, // "load" / "save"
	)
)

// RegisterEngineMetrics registers the engine metrics explicitly (no init()).
func RegisterEngineMetrics() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		ScoringFailuresTotal,
		SuggestionsTotal,
		HistoryStoreErrorsTotal,
	)
}
