package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Retrieval metrics track calls made through the Contracts surface
var (
	// NewsRetrieveTotal counts RetrieveNews calls by source and outcome
	NewsRetrieveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_retrieve_total",
			Help: "Total number of news retrieval calls",
		},
		[]string{"source", "outcome"}, // outcome: success|validation|invalid_argument|remote|unsupported|error
	)

	// NewsRetrievedItemsTotal counts validated news returned per source
	NewsRetrievedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_retrieved_items_total",
			Help: "Total number of validated news items returned",
		},
		[]string{"source"},
	)

	// NewsRetrieveDuration measures retrieval duration in seconds
	NewsRetrieveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_retrieve_duration_seconds",
			Help:    "News retrieval duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"source"},
	)

	// NewsSaveTotal counts SaveNews calls by source and outcome
	NewsSaveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_save_total",
			Help: "Total number of news save calls",
		},
		[]string{"source", "outcome"},
	)

	// NewsDuplicatesTotal counts news dropped by id de-duplication
	NewsDuplicatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_duplicates_total",
			Help: "Total number of news items dropped as duplicates",
		},
	)
)

// Upstream metrics track requests sent to the news provider
var (
	// UpstreamRequestsTotal counts provider requests by path and status code
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_requests_total",
			Help: "Total number of requests sent to the news provider",
		},
		[]string{"path", "status"}, // status: HTTP code or "error"
	)

	// UpstreamRequestDuration measures provider request duration in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_upstream_request_duration_seconds",
			Help:    "News provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	// UpstreamCircuitOpen is 1 while the named breaker rejects provider calls
	UpstreamCircuitOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "news_upstream_circuit_open",
			Help: "Whether the news provider circuit breaker is open (1) or not (0)",
		},
		[]string{"circuit"},
	)
)
