// Package metrics holds the Prometheus collectors of the shop backend.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	ledgerDuration  prometheus.Histogram
	ledgersComputed *prometheus.CounterVec
	sourceErrors    *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	recordChanges   *prometheus.CounterVec
	breakerTransits *prometheus.CounterVec
}

// New registers all collectors in a fresh registry, plus the Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		ledgerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shop_ledger_compute_duration_seconds",
			Help:    "Time spent fetching and computing a customer ledger.",
			Buckets: prometheus.DefBuckets,
		}),
		ledgersComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_ledgers_computed_total",
			Help: "Ledgers computed, by resulting account status.",
		}, []string{"status"}),
		sourceErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_ledger_source_errors_total",
			Help: "Failed ledger source fetches, by source.",
		}, []string{"source"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_cache_hits_total",
			Help: "Total cache hits.",
		}, []string{"cache"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_cache_misses_total",
			Help: "Total cache misses.",
		}, []string{"cache"}),
		recordChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_record_changes_total",
			Help: "Record mutations observed on the event bus.",
		}, []string{"record", "op"}),
		breakerTransits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions, by breaker and target state.",
		}, []string{"breaker", "state"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// The recording methods below are no-ops on a nil *Metrics.

func (m *Metrics) RecordLedgerDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.ledgerDuration.Observe(d.Seconds())
}

func (m *Metrics) IncrLedgerComputed(status string) {
	if m == nil {
		return
	}
	m.ledgersComputed.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrSourceError(source string) {
	if m == nil {
		return
	}
	m.sourceErrors.WithLabelValues(source).Inc()
}

func (m *Metrics) IncrCacheHit(cache string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *Metrics) IncrCacheMiss(cache string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *Metrics) IncrRecordChange(record, op string) {
	if m == nil {
		return
	}
	m.recordChanges.WithLabelValues(record, op).Inc()
}

func (m *Metrics) IncrBreakerTransition(breaker, state string) {
	if m == nil {
		return
	}
	m.breakerTransits.WithLabelValues(breaker, state).Inc()
}
