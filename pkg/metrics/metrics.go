package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "http_requests_total", Help: "HTTP requests by method, route and status code."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "site", Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	// SearchResults observes how many documents each collection contributed to a search.
	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "site", Name: "search_results", Help: "Search result count per collection.", Buckets: []float64{0, 1, 5, 10, 25, 50, 100}},
		[]string{"collection"},
	)
	// SearchSynonymHits counts searches whose term was found in the synonym lexicon.
	SearchSynonymHits = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "site", Name: "search_synonym_hits_total", Help: "Searches expanded through the synonym lexicon."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(SearchResults)
	reg.MustRegister(SearchSynonymHits)
}
