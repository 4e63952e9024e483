package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	rec := httptest.NewRecorder()

	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := PingerFunc(func(ctx context.Context) error { return nil })
	down := PingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name         string
		postgres     Pinger
		redis        Pinger
		wantStatus   int
		wantPostgres string
		wantRedis    string
	}{
		{name: "ready", postgres: ok, redis: ok, wantStatus: http.StatusOK, wantPostgres: "ok", wantRedis: "ok"},
		{name: "postgres down", postgres: down, redis: ok, wantStatus: http.StatusServiceUnavailable, wantPostgres: "connection refused", wantRedis: "ok"},
		{name: "redis down", postgres: ok, redis: down, wantStatus: http.StatusServiceUnavailable, wantPostgres: "ok", wantRedis: "connection refused"},
		{name: "both down", postgres: down, redis: down, wantStatus: http.StatusServiceUnavailable, wantPostgres: "connection refused", wantRedis: "connection refused"},
		{name: "missing pinger", postgres: ok, redis: nil, wantStatus: http.StatusServiceUnavailable, wantPostgres: "ok", wantRedis: "not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealthHandler(tt.postgres, tt.redis).Readiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp ReadinessResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Components["postgres"] != tt.wantPostgres || resp.Components["redis"] != tt.wantRedis {
				t.Fatalf("unexpected components %v", resp.Components)
			}
		})
	}
}
