// Package accrualworker periodically accrues interest on every open credit line.
package accrualworker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gocredit/internal/infrastructure/metrics"
	"github.com/iho/gocredit/internal/usecase"
)

// Sweeper accrues all open credit lines up to now.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error)
}

// Config for Worker.
type Config struct {
	Sweeper  Sweeper
	Metrics  *metrics.Metrics // optional
	Now      func() time.Time
	Logger   zerolog.Logger
	Interval time.Duration
}

// Worker runs a sweep on start and then once per interval.
type Worker struct {
	sweeper  Sweeper
	metrics  *metrics.Metrics
	now      func() time.Time
	logger   zerolog.Logger
	interval time.Duration
}

// New creates a new Worker. The interval defaults to one hour.
func New(cfg Config) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}

	return &Worker{
		sweeper:  cfg.Sweeper,
		metrics:  cfg.Metrics,
		now:      cfg.Now,
		logger:   cfg.Logger.With().Str("component", "accrual_worker").Logger(),
		interval: cfg.Interval,
	}
}

// Start runs until ctx is cancelled and then returns ctx.Err().
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("accrual worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("accrual worker shutting down")
			return ctx.Err()
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

// runSweep runs one sweep. Errors are logged; the next tick retries.
func (w *Worker) runSweep(ctx context.Context) {
	report, err := w.sweeper.Sweep(ctx, w.now())
	if w.metrics != nil {
		w.metrics.ObserveSweep(report, err)
	}

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		event := w.logger.Error().Err(err)
		if report != nil {
			event = event.Str("run_id", report.RunID).Int("processed", report.Processed)
		}
		event.Msg("accrual sweep failed")
		return
	}

	if report.Failed > 0 {
		w.logger.Warn().
			Str("run_id", report.RunID).
			Int("failed", report.Failed).
			Int("processed", report.Processed).
			Msg("accrual sweep finished with failures")
	}
}
