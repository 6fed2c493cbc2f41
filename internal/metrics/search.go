package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeEmptyQuery = "empty_query"
	OutcomeStoreError = "store_error"
	OutcomeTooBroad   = "too_broad"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of catalog searches by outcome",
		},
		[]string{"outcome"},
	)

	SearchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_candidates",
			Help:      "Candidates fetched from the store per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Scored items surviving the result filter per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics with reg. Must be called once from main.
func RegisterSearchMetrics(reg prometheus.Registerer) {
	if searchMetricsRegistered {
		return
	}
	reg.MustRegister(SearchRequestsTotal, SearchCandidates, SearchResults)
	searchMetricsRegistered = true
}
