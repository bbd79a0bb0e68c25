package httpclient

import (
	"net/http"

	"go.opentelemetry.io/otel"

	"github.com/retailkit/retailkit/logger"
)

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. The replacement
// should not carry its own Timeout: per-request deadlines govern.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger enables debug-level request logging. The client is silent
// by default.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithMetrics enables Prometheus instrumentation of the request lifecycle.
func WithMetrics(m *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracing enables an OpenTelemetry client span around each request,
// using the globally registered tracer provider.
func WithTracing(tracerName string) Option {
	return func(c *Client) {
		c.tracer = otel.Tracer(tracerName)
	}
}

// WithRequestID stamps each outgoing request with a generated
// X-Request-ID header.
func WithRequestID() Option {
	return func(c *Client) {
		c.requestID = true
	}
}
