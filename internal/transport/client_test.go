package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(baseURL string, maxRetries int) *Client {
	return NewClient(Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
	}, nil)
}

func TestDo_RetriesTransientFailuresThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	var out struct {
		Status string `json:"status"`
	}
	if err := client.Get(context.Background(), "/status", nil, &out); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if out.Status != "ok" {
		t.Errorf("decoded status %q, want ok", out.Status)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestDo_StopsAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	err := client.Get(context.Background(), "/status", nil, nil)
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	// 首次尝试 + max_retries 次重试
	if got := atomic.LoadInt32(&calls); got != 4 {
		t.Errorf("server saw %d calls, want 4", got)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "HTTP_503" {
		t.Errorf("error code %q, want HTTP_503", apiErr.Code)
	}
	if !apiErr.Retryable {
		t.Error("503 should be classified retryable")
	}
}

func TestDo_NonRetryableStatusFailsImmediately(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"ORDER_NOT_FOUND","message":"未找到委托"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	err := client.Get(context.Background(), "/order", nil, nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on 404)", got)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "ORDER_NOT_FOUND" {
		t.Errorf("server-provided code should win, got %q", apiErr.Code)
	}
	if apiErr.Message != "未找到委托" {
		t.Errorf("server-provided message should win, got %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status %d, want 404", apiErr.Status)
	}
	if apiErr.Retryable {
		t.Error("404 must not be retryable even with a body")
	}
}

func TestDo_ErrorBodyWithoutCodeFallsBackToHTTPCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"oops"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	err := client.Get(context.Background(), "/x", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "HTTP_400" {
		t.Errorf("error code %q, want HTTP_400", apiErr.Code)
	}
}

func TestDo_ConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 立刻关闭，后续请求全部连接失败

	client := newTestClient(server.URL, 1)

	err := client.Get(context.Background(), "/status", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Code != CodeNetworkError {
		t.Errorf("error code %q, want %s", apiErr.Code, CodeNetworkError)
	}
	if !apiErr.Retryable {
		t.Error("connection failure should be retryable")
	}
}

func TestDo_ContextCancellationStopsRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:    server.URL,
		MaxRetries: 5,
		BaseDelay:  200 * time.Millisecond,
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Get(ctx, "/status", nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1 (cancelled during backoff)", got)
	}
}

func TestDefaultHeaders_SetAndRemove(t *testing.T) {
	var authSeen atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authSeen.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	client.SetHeader("Authorization", "Bearer token-1")
	if err := client.Get(context.Background(), "/a", nil, nil); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got := authSeen.Load(); got != "Bearer token-1" {
		t.Errorf("Authorization header %q, want Bearer token-1", got)
	}

	client.RemoveHeader("Authorization")
	if err := client.Get(context.Background(), "/b", nil, nil); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got := authSeen.Load(); got != "" {
		t.Errorf("Authorization header should be cleared, got %q", got)
	}
}

func TestPost_SendsJSONBodyAndQuery(t *testing.T) {
	var (
		gotContentType string
		gotQuery       string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	if err := client.Post(context.Background(), "/tx", map[string]string{"k": "v"}, nil); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type %q, want application/json", gotContentType)
	}
	if string(gotBody) != `{"k":"v"}` {
		t.Errorf("body %q, want {\"k\":\"v\"}", gotBody)
	}

	q := url.Values{}
	q.Set("account_index", "42")
	if err := client.Get(context.Background(), "/tx", q, nil); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if gotQuery != "account_index=42" {
		t.Errorf("query %q, want account_index=42", gotQuery)
	}
}

func TestDo_MalformedResponseIsRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	var out map[string]interface{}
	err := client.Get(context.Background(), "/x", nil, &out)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != CodeRequestError {
		t.Errorf("error code %q, want %s", apiErr.Code, CodeRequestError)
	}
	if apiErr.Retryable {
		t.Error("decode failure must not be retryable")
	}
}
