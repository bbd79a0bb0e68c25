package httpclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle.
// All methods are nil-receiver safe so instrumentation can be disabled by
// simply not attaching a collector.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(reg prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "retailkit_client_requests_total",
				Help: "Total number of HTTP requests made",
			},
			[]string{"method", "status"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "retailkit_client_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
		requestsInFlight: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "retailkit_client_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
			[]string{"method"},
		),
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "retailkit_client_errors_total",
				Help: "Total number of classified request errors",
			},
			[]string{"kind"},
		),
	}
}

// RequestStarted marks a request as in flight.
func (mc *MetricsCollector) RequestStarted(method string) {
	if mc == nil {
		return
	}
	mc.requestsInFlight.WithLabelValues(method).Inc()
}

// RequestFinished marks a request as no longer in flight.
func (mc *MetricsCollector) RequestFinished(method string) {
	if mc == nil {
		return
	}
	mc.requestsInFlight.WithLabelValues(method).Dec()
}

// RecordRequest records request count and duration. A status of 0 means
// no HTTP response was received.
func (mc *MetricsCollector) RecordRequest(method string, status int, d time.Duration) {
	if mc == nil {
		return
	}
	code := strconv.Itoa(status)
	mc.requestsTotal.WithLabelValues(method, code).Inc()
	mc.requestDuration.WithLabelValues(method, code).Observe(d.Seconds())
}

// RecordError records a classified error by kind.
func (mc *MetricsCollector) RecordError(kind Kind) {
	if mc == nil {
		return
	}
	mc.errorsTotal.WithLabelValues(kind.String()).Inc()
}
