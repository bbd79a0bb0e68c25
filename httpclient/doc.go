// Package httpclient is the request-execution engine behind the retailkit
// API client. Given an abstract request (method, path, optional body,
// query parameters, and per-call overrides) it produces a fully formed
// HTTP exchange, enforces a per-request timeout, and maps every outcome
// into a closed taxonomy of typed errors.
//
// The engine performs no caching and no retries; a failed or timed-out
// request terminates immediately and classification is the caller's
// branching point:
//
//	c, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Tokens:  httpclient.StaticToken("my-token"),
//	})
//
//	sale, err := httpclient.Get[Sale](ctx, c, "/sales/123")
//	if httpclient.IsNotFound(err) {
//	    // handle missing resource
//	}
//
// Bodies are JSON-encoded unless they are an io.Reader, a []byte, or a
// *MultipartBody, which pass through opaque. Observability (logging,
// Prometheus metrics, OpenTelemetry spans) is opt-in via Options; the
// engine emits nothing by default.
package httpclient
