package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks scheduled retrieval runs.
//
//   - news_worker_runs_total: runs by status (success, failure)
//   - news_worker_run_duration_seconds: run duration histogram
//   - news_worker_items_collected_total: News collected across all runs
//   - news_worker_last_run_items: News collected by the latest successful run
//   - news_worker_last_success_timestamp: Unix time of the last successful run
type Metrics struct {
	RunsTotal            *prometheus.CounterVec
	RunDurationSeconds   prometheus.Histogram
	ItemsCollectedTotal  prometheus.Counter
	LastRunItems         prometheus.Gauge
	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates the worker metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "news_worker_runs_total",
			Help: "Total number of scheduled retrieval runs by status (success/failure)",
		}, []string{"status"}),

		RunDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "news_worker_run_duration_seconds",
			Help:    "Duration of scheduled retrieval runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),

		ItemsCollectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "news_worker_items_collected_total",
			Help: "Total number of News collected across all runs",
		}),

		LastRunItems: factory.NewGauge(prometheus.GaugeOpts{
			Name: "news_worker_last_run_items",
			Help: "Number of News collected by the latest successful run",
		}),

		LastSuccessTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "news_worker_last_success_timestamp",
			Help: "Unix timestamp of the last successful run",
		}),
	}
}

// RecordRun increments the run counter for status ("success" or "failure").
func (m *Metrics) RecordRun(status string) {
	m.RunsTotal.WithLabelValues(status).Inc()
}

// RecordDuration observes a run duration in seconds.
func (m *Metrics) RecordDuration(seconds float64) {
	m.RunDurationSeconds.Observe(seconds)
}

// RecordItems records how many News a successful run collected.
func (m *Metrics) RecordItems(count int) {
	m.ItemsCollectedTotal.Add(float64(count))
	m.LastRunItems.Set(float64(count))
}

// RecordLastSuccess stamps the current time as the last successful run.
func (m *Metrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
