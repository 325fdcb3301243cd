package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal metrics
	JournalsPosted  prometheus.Counter
	JournalErrors   *prometheus.CounterVec
	PostingDuration prometheus.Histogram
	JournalAmount   prometheus.Histogram

	// Account metrics
	AccountsCreated prometheus.Counter

	// Summary metrics
	SummaryQueries *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		JournalsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "boki_journals_posted_total",
			Help: "Total number of journal entries posted",
		}),
		JournalErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boki_journal_errors_total",
				Help: "Total number of journal posting errors by type",
			},
			[]string{"error_type"},
		),
		PostingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "boki_posting_duration_seconds",
			Help:    "Duration of journal posting operations",
			Buckets: prometheus.DefBuckets,
		}),
		JournalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "boki_journal_amount",
			Help:    "Posted journal amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "boki_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		SummaryQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boki_summary_queries_total",
				Help: "Total trial-balance queries by scope",
			},
			[]string{"scope"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "boki_cache_hits_total",
			Help: "Total chart cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "boki_cache_misses_total",
			Help: "Total chart cache misses",
		}),
	}
}
