package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gocredit/internal/adapter/http/handler"
	"github.com/iho/gocredit/internal/adapter/http/middleware"
	"github.com/iho/gocredit/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	RiskHandler      *handler.RiskHandler
	AccrualHandler   *handler.AccrualHandler
	PositionHandler  *handler.PositionHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	Logger           zerolog.Logger
	IdempotencyTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/credit-lines/{id}", func(r chi.Router) {
			r.Get("/risk", cfg.RiskHandler.Overview)
			r.Get("/max-borrow", cfg.RiskHandler.MaxBorrow)
			r.Get("/parameters", cfg.RiskHandler.Parameters)
			r.Post("/borrow/verify", cfg.RiskHandler.VerifyBorrow)
			r.Post("/withdraw/verify", cfg.RiskHandler.VerifyWithdraw)

			r.Post("/accrue", cfg.AccrualHandler.Accrue)
			r.Get("/accruals", cfg.AccrualHandler.List)

			r.Post("/deposit", cfg.PositionHandler.Deposit)
			r.Post("/withdraw", cfg.PositionHandler.Withdraw)
			r.Post("/borrow", cfg.PositionHandler.Borrow)
			r.Post("/repay", cfg.PositionHandler.Repay)
		})

		r.Post("/projections/open-credit-line", cfg.RiskHandler.Project)
		r.Post("/accrual/sweep", cfg.AccrualHandler.Sweep)
	})

	return r
}
