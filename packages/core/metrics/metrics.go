// Package metrics holds the prometheus collectors of the sync pipeline.
// Every method is safe on a nil *Metrics so callers can run without them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	fetches         *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	syncItems       *prometheus.CounterVec
	prospectsUpsert *prometheus.CounterVec
	matchesInserted *prometheus.CounterVec
	parseMisses     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtiq",
			Name:      "source_fetches_total",
			Help:      "Outbound page fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "courtiq",
			Name:      "source_fetch_duration_seconds",
			Help:      "Latency of outbound page fetches.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		}, []string{"source"}),
		syncItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtiq",
			Name:      "sync_items_total",
			Help:      "Per-recruit sync results by job and status.",
		}, []string{"job", "status"}),
		prospectsUpsert: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtiq",
			Name:      "prospects_upserted_total",
			Help:      "Prospect rows written by reconciliation.",
		}, []string{"source"}),
		matchesInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtiq",
			Name:      "match_results_inserted_total",
			Help:      "New match result rows.",
		}, []string{"source"}),
		parseMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courtiq",
			Name:      "parse_misses_total",
			Help:      "Pages on which no extraction rule matched.",
		}, []string{"extractor"}),
	}
	reg.MustRegister(m.fetches, m.fetchDuration, m.syncItems, m.prospectsUpsert, m.matchesInserted, m.parseMisses)
	return m
}

func (m *Metrics) ObserveFetch(source, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(source, outcome).Inc()
	m.fetchDuration.WithLabelValues(source).Observe(took.Seconds())
}

func (m *Metrics) SyncItem(job, status string) {
	if m == nil {
		return
	}
	m.syncItems.WithLabelValues(job, status).Inc()
}

func (m *Metrics) ProspectsUpserted(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.prospectsUpsert.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) MatchesInserted(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.matchesInserted.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) ParseMiss(extractor string) {
	if m == nil {
		return
	}
	m.parseMisses.WithLabelValues(extractor).Inc()
}
