package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientConfig configures the Redis client backing the price cache and the
// idempotency store. Zero values keep the go-redis defaults.
type ClientConfig struct {
	URL      string
	PoolSize int
	Timeout  time.Duration
}

// NewClient parses cfg.URL, applies the overrides and pings the server.
func NewClient(ctx context.Context, cfg ClientConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.Timeout > 0 {
		opts.DialTimeout = cfg.Timeout
		opts.ReadTimeout = cfg.Timeout
		opts.WriteTimeout = cfg.Timeout
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// HealthCheck reports whether a Redis client answers PING.
type HealthCheck struct {
	client *redis.Client
}

// NewHealthCheck wraps client for readiness probes.
func NewHealthCheck(client *redis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping implements the readiness probe.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
