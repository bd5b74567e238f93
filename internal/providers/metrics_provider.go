package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"atd/internal/services"
	"atd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncTicksTotal()
	IncActiveTicks()
	IncSkippedTicks(reason string)
	AddCreditedSeconds(seconds float64)
	IncSaves(success bool)
	IncExports(success bool)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	ticksTotal          prometheus.Counter
	activeTicks         prometheus.Counter
	skippedTicks        *prometheus.CounterVec
	creditedSeconds     prometheus.Counter
	saves               *prometheus.CounterVec
	exports             *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncTicksTotal() {
	m.ticksTotal.Inc()
}

func (m *MetricsProvider) IncActiveTicks() {
	m.activeTicks.Inc()
}

func (m *MetricsProvider) IncSkippedTicks(reason string) {
	m.skippedTicks.WithLabelValues(reason).Inc()
}

func (m *MetricsProvider) AddCreditedSeconds(seconds float64) {
	m.creditedSeconds.Add(seconds)
}

func (m *MetricsProvider) IncSaves(success bool) {
	m.saves.WithLabelValues(boolResult(success)).Inc()
}

func (m *MetricsProvider) IncExports(success bool) {
	m.exports.WithLabelValues(boolResult(success)).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func boolResult(success bool) string {
	if success {
		return "success"
	}
	return "failure"
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

func NewMetricsProvider(conf *structures.Config, service services.TrackingServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		ticksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atd_ticks_total",
			Help: "Total number of tracker loop ticks",
		}),

		activeTicks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atd_active_ticks_total",
			Help: "Ticks that credited activity to the store",
		}),

		skippedTicks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atd_skipped_ticks_total",
			Help: "Ticks skipped without crediting activity",
		}, []string{"reason"}),

		creditedSeconds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atd_credited_seconds_total",
			Help: "Total active seconds credited by the scoring policy",
		}),

		saves: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atd_saves_total",
			Help: "Persistence save attempts by result",
		}, []string{"result"}),

		exports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atd_exports_total",
			Help: "Report export attempts by result",
		}, []string{"result"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "atd_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "atd_tracked_files",
		Help: "Number of file identities in the store",
	}, func() float64 {
		return float64(service.FileCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "atd_tracked_buckets",
		Help: "Number of (file, day) buckets in the store",
	}, func() float64 {
		return float64(service.Summarize().DayCount)
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncTicksTotal()                                    {}
func (n *noopMetrics) IncActiveTicks()                                   {}
func (n *noopMetrics) IncSkippedTicks(_ string)                          {}
func (n *noopMetrics) AddCreditedSeconds(_ float64)                      {}
func (n *noopMetrics) IncSaves(_ bool)                                   {}
func (n *noopMetrics) IncExports(_ bool)                                 {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
