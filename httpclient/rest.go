package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Result wraps a completed exchange with a decoded body of type T.
// Exactly one of Data and Empty is meaningful: Empty reports a 204 or
// zero-length response, in which case Data holds the zero value.
type Result[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
	// Empty reports an empty-success outcome (HTTP 204 or no body).
	Empty bool
}

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQuery sets the request query parameters.
func WithQuery(params map[string]any) RequestOption {
	return func(r *Request) {
		r.Query = params
	}
}

// WithQueryParam adds a single query parameter to the request.
func WithQueryParam(key string, value any) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]any)
		}
		r.Query[key] = value
	}
}

// WithTimeout overrides the client's default timeout for the request.
func WithTimeout(d time.Duration) RequestOption {
	return func(r *Request) {
		r.Timeout = d
	}
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Result[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Result[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the response into type T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Result[T], error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with a JSON body and decodes the response into type T.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Result[T], error) {
	return do[T](ctx, c, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request and decodes the JSON response into type T.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Result[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

// do executes a typed request and decodes the JSON response.
func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*Result[T], error) {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return Decode[T](resp)
}

// Decode interprets a successful response: a 204 status or a zero-length
// body yields the empty-success marker; anything else must be valid JSON.
// An unparsable body on a success status is a protocol violation and is
// reported as a KindNetwork error.
func Decode[T any](resp *Response) (*Result[T], error) {
	result := &Result[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
	}
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		result.Empty = true
		return result, nil
	}
	if err := json.Unmarshal(resp.Body, &result.Data); err != nil {
		return nil, NewDecodeError(err)
	}
	return result, nil
}
