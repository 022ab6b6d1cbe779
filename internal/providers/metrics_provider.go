package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"respire/internal/structures"
	"time"
)

// LedgerStatsSource exposes the live credit figures for gauges.
type LedgerStatsSource interface {
	CurrentCredits() (earned int64, available float64)
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	SetRecordsTotal(collection string, count int)
	IncRedemptions(outcome string)
	IncLogEntries(logType string)
	WatchLedger(source LedgerStatsSource)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	recordsTotal        *prometheus.GaugeVec
	redemptions         *prometheus.CounterVec
	logEntries          *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRecordsTotal(collection string, count int) {
	m.recordsTotal.WithLabelValues(collection).Set(float64(count))
}

func (m *MetricsProvider) IncRedemptions(outcome string) {
	m.redemptions.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncLogEntries(logType string) {
	m.logEntries.WithLabelValues(logType).Inc()
}

// WatchLedger registers gauges that read credits on every scrape.
func (m *MetricsProvider) WatchLedger(source LedgerStatsSource) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "respire_credits_earned",
		Help: "Credits earned since the quit timestamp",
	}, func() float64 {
		earned, _ := source.CurrentCredits()
		return float64(earned)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "respire_credits_available",
		Help: "Earned credits minus the cost of redeemed bounties",
	}, func() float64 {
		_, available := source.CurrentCredits()
		return available
	})
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "respire_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "respire_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "respire_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "respire_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "respire_persistence_duration_seconds",
			Help:    "Duration of store flushes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		recordsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "respire_records_total",
			Help: "Number of stored records per collection",
		}, []string{"collection"}),

		redemptions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "respire_redemptions_total",
			Help: "Bounty redemption attempts by outcome",
		}, []string{"outcome"}),

		logEntries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "respire_log_entries_total",
			Help: "Trigger log entries appended by type",
		}, []string{"type"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                  {}
func (n *noopMetrics) IncRedemptions(_ string)                          {}
func (n *noopMetrics) IncLogEntries(_ string)                           {}
func (n *noopMetrics) WatchLedger(_ LedgerStatsSource)                  {}
