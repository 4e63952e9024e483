package oracle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iho/gocredit/internal/fixedpoint"
)

func newTestClient(url string, opts ...Option) *Client {
	c := NewClient(url, time.Second, opts...)
	c.backoff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}

func TestClientReturnsPlainDecimalPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string price", `{"symbol":"BTC","price":"65000.123456789012345678"}`, "65000.123456789012345678"},
		{"number price", `{"symbol":"BTC","price":65000.5}`, "65000.5"},
		{"exponent number", `{"symbol":"BTC","price":6.5e4}`, "65000"},
		{"tiny exponent number", `{"symbol":"BTC","price":8.12e-7}`, "0.000000812"},
		{"exponent string", `{"symbol":"BTC","price":"1.25E+3"}`, "1250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/prices/BTC" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			price, err := newTestClient(srv.URL+"/").GetTokenPriceBySymbol(context.Background(), " btc ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if price != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, price)
			}
			if _, err := fixedpoint.ParseUnits(price, fixedpoint.Decimals); err != nil {
				t.Fatalf("price %s does not parse as fixed point: %v", price, err)
			}
		})
	}
}

func TestClientRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"symbol":"ETH","price":"3000"}`))
	}))
	defer srv.Close()

	price, err := newTestClient(srv.URL).GetTokenPriceBySymbol(context.Background(), "ETH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != "3000" || calls.Load() != 3 {
		t.Fatalf("expected price after 3 calls, got %s after %d", price, calls.Load())
	}
}

func TestClientGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, WithMaxRetries(2)).GetTokenPriceBySymbol(context.Background(), "ETH")
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
}

func TestClientPermanentFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unknown symbol", http.StatusNotFound, "", ErrUnknownSymbol},
		{"bad request", http.StatusBadRequest, "", ErrInvalidResponse},
		{"malformed body", http.StatusOK, `{"price":`, ErrInvalidResponse},
		{"missing price", http.StatusOK, `{"symbol":"BTC"}`, ErrInvalidResponse},
		{"non numeric price", http.StatusOK, `{"price":"lots"}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).GetTokenPriceBySymbol(context.Background(), "BTC")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if calls.Load() != 1 {
				t.Fatalf("expected no retries, got %d calls", calls.Load())
			}
		})
	}
}

func TestClientRejectsEmptySymbol(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0").GetTokenPriceBySymbol(context.Background(), "  ")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}
