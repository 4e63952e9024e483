package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "normalizes credit line path",
			method:     http.MethodGet,
			path:       "/api/v1/credit-lines/ABC123/risk",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodPost,
			path:       "/health",
			statusCode: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			normalized := normalizePath(tc.path)
			counter := httpRequestsTotal.WithLabelValues(tc.method, normalized, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "credit line path without suffix",
			input:    "/api/v1/credit-lines/ABC123",
			expected: "/api/v1/credit-lines/{id}",
		},
		{
			name:     "credit line path with suffix",
			input:    "/api/v1/credit-lines/ABC123/borrow/verify",
			expected: "/api/v1/credit-lines/{id}/borrow/verify",
		},
		{
			name:     "trailing slash",
			input:    "/api/v1/credit-lines/",
			expected: "/api/v1/credit-lines/",
		},
		{
			name:     "non-matching path",
			input:    "/api/v1/accrual/sweep",
			expected: "/api/v1/accrual/sweep",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	httpRequestsTotal.Reset()
	httpIdempotentReplays.Reset()

	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/api/v1/credit-lines/{id}/borrow", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(IdempotencyReplayHeader, "true")
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/credit-lines/01ABC/borrow", nil))

	pattern := "/api/v1/credit-lines/{id}/borrow"
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, pattern, "200")); got != 1 {
		t.Fatalf("expected request counted under %s, got %v", pattern, got)
	}
	if got := testutil.ToFloat64(httpIdempotentReplays.WithLabelValues(pattern)); got != 1 {
		t.Fatalf("expected replay to be counted, got %v", got)
	}
}
