package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated prometheus.Counter
	EntryAmount    prometheus.Histogram
	EntryErrors    *prometheus.CounterVec

	// Event metrics
	EventsPublished    *prometheus.CounterVec
	EventsConsumed     *prometheus.CounterVec
	EventProcessingLag prometheus.Histogram

	// Aggregate metrics
	AggregatesUpdated prometheus.Counter
	AggregateReads    *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	CacheOperations *prometheus.CounterVec
	CacheErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Entry metrics
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_entries_created_total",
			Help: "Total number of entries created",
		}),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashflow_entry_amount",
			Help:    "Entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_entry_errors_total",
				Help: "Total number of entry errors by type",
			},
			[]string{"error_type"},
		),

		// Event metrics
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_events_published_total",
				Help: "Total events published to the broker by status",
			},
			[]string{"status"},
		),
		EventsConsumed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_events_consumed_total",
				Help: "Total events consumed from the broker by outcome",
			},
			[]string{"outcome"},
		),
		EventProcessingLag: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashflow_event_processing_lag_seconds",
			Help:    "Delay between event creation and consumption",
			Buckets: prometheus.DefBuckets,
		}),

		// Aggregate metrics
		AggregatesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_aggregates_updated_total",
			Help: "Total number of daily aggregate updates",
		}),
		AggregateReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_aggregate_reads_total",
				Help: "Total aggregate reads by source",
			},
			[]string{"source"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "cashflow_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		CacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_cache_operations_total",
				Help: "Total cache operations",
			},
			[]string{"operation"},
		),
		CacheErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_cache_errors_total",
				Help: "Total cache errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),
	}
}
