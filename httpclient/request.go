package httpclient

import "time"

// Request describes one outbound HTTP exchange. A Request is built per
// call site, never mutated by the client, and discarded after the
// exchange completes.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// Path is appended to the client's base URL. Embedded identifiers
	// must already be substituted by the caller.
	Path string
	// Headers are request-specific headers. They override client
	// defaults on key collision.
	Headers map[string]string
	// Query are URL query parameters. Nil values are omitted entirely;
	// all other values are stringified and percent-encoded.
	Query map[string]any
	// Body is the request body. A *MultipartBody is multipart-encoded,
	// an io.Reader or []byte passes through opaque, and any other
	// non-nil value is JSON-encoded.
	Body any
	// Timeout overrides the client's default timeout for this request.
	Timeout time.Duration
}

// Response is the raw result of a completed HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
