package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, srvURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: srvURL}, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/sales/123" {
			t.Errorf("expected /sales/123, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "123"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/sales/123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !resp.IsSuccess() {
		t.Error("expected IsSuccess=true")
	}
	if !strings.Contains(string(resp.Body), "123") {
		t.Errorf("body should contain 123, got %s", resp.Body)
	}
}

func TestClient_Do_POST_JSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/sales",
		Body:   map[string]string{"note": "walk-in"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestClient_Do_SlashJoin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(200)
	}))
	defer srv.Close()

	bases := []string{srv.URL, srv.URL + "/", srv.URL + "///"}
	paths := []string{"sales", "/sales", "///sales"}
	for _, base := range bases {
		for _, path := range paths {
			c, err := New(Config{BaseURL: base})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: path}); err != nil {
				t.Fatalf("base %q path %q: %v", base, path, err)
			}
			if gotPath != "/sales" {
				t.Errorf("base %q path %q: server saw %q", base, path, gotPath)
			}
		}
	}
}

func TestClient_Do_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := q.Get("status"); got != "open order" {
			t.Errorf("expected decoded 'open order', got %q", got)
		}
		if _, present := q["since"]; present {
			t.Error("nil-valued parameter should be omitted entirely")
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/sales",
		Query: map[string]any{
			"page":   2,
			"status": "open order",
			"since":  nil,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_HeaderMerge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Static"); got != "default" {
			t.Errorf("expected X-Static=default, got %q", got)
		}
		if got := r.Header.Get("X-Shared"); got != "override" {
			t.Errorf("per-request header should win, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"X-Static": "default", "X-Shared": "base"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{"X-Shared": "override"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc123" {
			t.Errorf("expected Bearer abc123, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	var calls atomic.Int32
	c, err := New(Config{
		BaseURL: srv.URL,
		Tokens: TokenFunc(func(context.Context) (string, error) {
			calls.Add(1)
			return "abc123", nil
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("token source should be invoked exactly once, got %d", got)
	}
}

func TestClient_Do_EmptyTokenSkipsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Tokens: StaticToken("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_TokenOverwritesHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer fresh" {
			t.Errorf("token source should overwrite Authorization, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"Authorization": "Bearer stale"},
		Tokens:  StaticToken("fresh"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_TokenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Tokens: TokenFunc(func(context.Context) (string, error) {
			return "", context.Canceled
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestClient_Do_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
			// the client cancelled the exchange, as it should
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Now()
	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	elapsed := time.Since(start)

	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	var clientErr *Error
	if !asError(err, &clientErr) || !strings.Contains(clientErr.Message, "timeout after 50ms") {
		t.Errorf("expected timeout message, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("request was not cancelled promptly, took %v", elapsed)
	}
}

func TestClient_Do_PerRequestTimeoutOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: 30 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/slow",
		Timeout: 40 * time.Millisecond,
	})
	var clientErr *Error
	if !asError(err, &clientErr) || !strings.Contains(clientErr.Message, "timeout after 40ms") {
		t.Fatalf("expected per-request timeout, got %v", err)
	}
}

func TestClient_Do_CallerCancellationIsNotTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: 30 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = c.Do(ctx, Request{Method: http.MethodGet, Path: "/slow"})
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	var clientErr *Error
	if !asError(err, &clientErr) || strings.Contains(clientErr.Message, "timeout after") {
		t.Errorf("caller cancellation must not be reported as a timeout, got %v", err)
	}
}

func TestClient_Do_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	var clientErr *Error
	if !asError(err, &clientErr) || clientErr.Message != "network request failed" {
		t.Errorf("expected uniform transport failure message, got %v", err)
	}
}

func TestClient_Do_ErrorStatusReturnsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/sales/nope"})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatal("raw response should accompany the classified error")
	}

	var clientErr *Error
	if !asError(err, &clientErr) {
		t.Fatal("expected *Error")
	}
	if clientErr.Message != "not found" {
		t.Errorf("expected message extracted from body, got %q", clientErr.Message)
	}
	if clientErr.Status != 404 {
		t.Errorf("expected status 404, got %d", clientErr.Status)
	}
	if clientErr.Raw == nil || !strings.Contains(clientErr.Raw.Body, "not found") {
		t.Error("expected raw response to carry the original body")
	}
}

func TestClient_Do_OpaqueBodyNoJSONContentType(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Content-Type")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/blobs",
		Body:   []byte{0x1f, 0x8b, 0x00},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(seen, "application/json") {
		t.Errorf("opaque body must not get a JSON content type, got %q", seen)
	}

	// A client-wide JSON default must not spill onto raw bytes either.
	c, err = New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/blobs",
		Body:   []byte{0x1f, 0x8b, 0x00},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(seen, "application/json") {
		t.Errorf("config JSON default must be dropped for raw bytes, got %q", seen)
	}

	// An explicit per-request content type stands, whatever it is.
	_, err = c.Do(context.Background(), Request{
		Method:  http.MethodPost,
		Path:    "/blobs",
		Headers: map[string]string{"Content-Type": "application/octet-stream"},
		Body:    []byte{0x1f, 0x8b, 0x00},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "application/octet-stream" {
		t.Errorf("expected explicit content type to stand, got %q", seen)
	}
}

func TestClient_Do_RequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-ID"); got == "" {
			t.Error("expected X-Request-ID header")
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, WithRequestID())
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_AbsolutePathPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/elsewhere" {
			t.Errorf("expected /elsewhere, got %s", r.URL.Path)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: "https://unused.example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: srv.URL + "/elsewhere"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
