package handler

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const readinessTimeout = 5 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

// Ping calls f.
func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// ReadinessResponse lists the state of every dependency.
type ReadinessResponse struct {
	Components map[string]string `json:"components"`
	Status     string            `json:"status"`
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	components map[string]Pinger
}

// NewHealthHandler creates a new HealthHandler checking postgres and redis.
func NewHealthHandler(postgres, redis Pinger) *HealthHandler {
	return &HealthHandler{
		components: map[string]Pinger{
			"postgres": postgres,
			"redis":    redis,
		},
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness pings every dependency concurrently. Any failure yields 503 with
// the failing component's error in the body.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := ReadinessResponse{
		Status:     "ready",
		Components: make(map[string]string, len(h.components)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, p := range h.components {
		wg.Add(1)
		go func(name string, p Pinger) {
			defer wg.Done()

			state := "ok"
			if p == nil {
				state = "not configured"
			} else if err := p.Ping(ctx); err != nil {
				state = err.Error()
			}

			mu.Lock()
			resp.Components[name] = state
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()

	status := http.StatusOK
	for _, state := range resp.Components {
		if state != "ok" {
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, status, resp)
}
