package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/retailkit/retailkit/logger"
)

// Client executes abstract requests against a single API backend.
// Concurrent calls share only the immutable configuration; each request
// races the network exchange against its own timeout.
type Client struct {
	httpClient *http.Client
	config     Config

	log       *logger.Logger
	metrics   *MetricsCollector
	tracer    trace.Tracer
	requestID bool
}

// New creates a client from the given configuration. The configuration is
// normalized (defaults filled, trailing slashes stripped) and validated;
// a missing base URL yields a KindValidation error.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.normalize()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, NewValidationError(err.Error())
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	c := &Client{
		// No client-level timeout: each request carries its own
		// deadline so per-request overrides work.
		httpClient: &http.Client{Transport: transport},
		config:     cfg,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Config returns the normalized client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do executes one HTTP exchange and returns the raw response. On a
// non-success status the response is returned alongside the classified
// error so callers can inspect the raw payload. Transport failures and
// timeouts return a nil response and a KindNetwork error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.config.Timeout
	}

	// The timeout race: the exchange runs under its own deadline, and
	// cancel always releases the timer on the non-timeout path.
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var span trace.Span
	if c.tracer != nil {
		tctx, span = c.tracer.Start(tctx, req.Method+" "+req.Path,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.path", req.Path),
			))
		defer span.End()
	}

	if c.metrics != nil {
		c.metrics.RequestStarted(req.Method)
		defer c.metrics.RequestFinished(req.Method)
	}

	start := time.Now()
	resp, err := c.execute(tctx, ctx, req, timeout)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(req.Method, status, elapsed)
		var clientErr *Error
		if errors.As(err, &clientErr) {
			c.metrics.RecordError(clientErr.Kind)
		}
	}
	if span != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	if c.log != nil {
		if err != nil {
			c.log.WithError(err).Debug("request failed", logger.Fields(
				logger.FieldMethod, req.Method,
				logger.FieldPath, req.Path,
				logger.FieldStatus, status,
				logger.FieldDuration, elapsed.Milliseconds(),
			))
		} else {
			c.log.Debug("request completed", logger.Fields(
				logger.FieldMethod, req.Method,
				logger.FieldPath, req.Path,
				logger.FieldStatus, status,
				logger.FieldDuration, elapsed.Milliseconds(),
			))
		}
	}

	return resp, err
}

// execute builds and sends the HTTP request under the timeout context.
// tctx carries the effective deadline; parent is the caller's context,
// used to tell our timeout apart from an outside cancellation.
func (c *Client) execute(tctx, parent context.Context, req Request, timeout time.Duration) (*Response, error) {
	httpReq, err := c.buildRequest(tctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Classify by the deadline's own disposition, never by the
		// error text: platform error naming varies.
		if tctx.Err() == context.DeadlineExceeded && parent.Err() == nil {
			return nil, NewTimeoutError(timeout, err)
		}
		return nil, NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, NewNetworkError(fmt.Errorf("read response body: %w", readErr))
		}
		// Best effort on error statuses: classification proceeds with
		// an empty body.
		body = nil
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := Classify(resp.StatusCode, errorMessage(body), body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the client config and the
// request descriptor.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	body, contentType, kind, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, joinURL(c.config.BaseURL, req.Path), body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			if v == nil {
				continue
			}
			q.Set(k, fmt.Sprint(v))
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Default headers, then per-request overrides.
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	switch kind {
	case bodyMultipart:
		// The boundary content type must reach the wire intact; any
		// configured or per-request value would make the parts
		// unparsable.
		httpReq.Header.Set("Content-Type", contentType)
	case bodyOpaque:
		// Raw bytes are not JSON. A config-level JSON default must not
		// label them; an explicit per-request content type stands.
		if !headerSetByRequest(req.Headers, "Content-Type") &&
			strings.HasPrefix(strings.ToLower(httpReq.Header.Get("Content-Type")), "application/json") {
			httpReq.Header.Del("Content-Type")
		}
	case bodyJSON:
		if httpReq.Header.Get("Content-Type") == "" {
			httpReq.Header.Set("Content-Type", contentType)
		}
	}

	if c.requestID {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	// The token source runs exactly once per request and always wins
	// over any previously set Authorization value.
	if c.config.Tokens != nil {
		token, err := c.config.Tokens.Token(ctx)
		if err != nil {
			return nil, NewTokenError(err)
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

// joinURL concatenates base and path with exactly one separating slash,
// regardless of trailing or leading slashes on either side.
func joinURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base = strings.TrimRight(base, "/")
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

// bodyKind tells buildRequest how to treat the Content-Type header for
// the encoded body.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyOpaque
	bodyMultipart
)

// encodeBody converts a body value into an io.Reader, a content type and
// the body's kind.
func encodeBody(body any) (io.Reader, string, bodyKind, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", bodyNone, nil
	case *MultipartBody:
		r, ct, err := v.encode()
		return r, ct, bodyMultipart, err
	case io.Reader:
		return v, "", bodyOpaque, nil
	case []byte:
		return bytes.NewReader(v), "", bodyOpaque, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", bodyNone, err
		}
		return bytes.NewReader(data), "application/json", bodyJSON, nil
	}
}

// headerSetByRequest reports whether the per-request header map carries
// the given header, regardless of key casing.
func headerSetByRequest(headers map[string]string, name string) bool {
	for k := range headers {
		if http.CanonicalHeaderKey(k) == name {
			return true
		}
	}
	return false
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
