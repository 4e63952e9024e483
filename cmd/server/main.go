package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gocredit/internal/adapter/http"
	"github.com/iho/gocredit/internal/adapter/http/handler"
	"github.com/iho/gocredit/internal/adapter/oracle"
	postgresRepo "github.com/iho/gocredit/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gocredit/internal/adapter/repository/redis"
	"github.com/iho/gocredit/internal/infrastructure/accrualworker"
	"github.com/iho/gocredit/internal/infrastructure/config"
	"github.com/iho/gocredit/internal/infrastructure/logger"
	"github.com/iho/gocredit/internal/infrastructure/metrics"
	"github.com/iho/gocredit/internal/infrastructure/postgres"
	"github.com/iho/gocredit/internal/infrastructure/redis"
	"github.com/iho/gocredit/internal/usecase"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "gocredit-server"})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	defer cancel()

	pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(connectCtx, redis.ClientConfig{
		URL:      cfg.RedisURL,
		PoolSize: cfg.RedisPoolSize,
		Timeout:  cfg.RedisTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	txManager := postgresRepo.NewTxManager(pool, postgresRepo.WithLockTimeout(cfg.DatabaseLockTimeout))
	creditLineRepo := postgresRepo.NewCreditLineRepository(pool)
	paramsRepo := postgresRepo.NewEconomicalParametersRepository(pool)
	currencyRepo := postgresRepo.NewCurrencyRepository(pool)
	accrualRepo := postgresRepo.NewDebtAccrualRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrierWithConfig(postgresRepo.RetrierConfig{MaxRetries: cfg.DatabaseMaxRetries}, appLogger)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	prices := usecase.NewPriceResolver(buildPriceOracle(cfg, redisClient, appLogger))

	riskUC := usecase.NewRiskUseCase(creditLineRepo, paramsRepo, currencyRepo, prices)
	accrualUC := usecase.NewAccrualUseCase(txManager, creditLineRepo, accrualRepo, idGen, retrier, appLogger, cfg.AccrualBatchSize)
	positionUC := usecase.NewPositionUseCase(txManager, creditLineRepo, accrualRepo, idGen, retrier, prices)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		RiskHandler:      handler.NewRiskHandler(riskUC),
		AccrualHandler:   handler.NewAccrualHandler(accrualUC),
		PositionHandler:  handler.NewPositionHandler(positionUC),
		HealthHandler:    handler.NewHealthHandler(pool, redis.NewHealthCheck(redisClient)),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	workerDone := make(chan struct{})
	if cfg.AccrualEnabled {
		worker := accrualworker.New(accrualworker.Config{
			Sweeper:  accrualUC,
			Metrics:  metrics.New(),
			Logger:   appLogger,
			Interval: cfg.AccrualInterval,
		})
		go func() {
			defer close(workerDone)
			_ = worker.Start(ctx)
		}()
	} else {
		close(workerDone)
		appLogger.Info().Msg("accrual worker disabled")
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		appLogger.Warn().Msg("accrual worker did not stop before shutdown timeout")
	}

	return nil
}

// buildPriceOracle wires the HTTP oracle behind the Redis price cache. Without
// ORACLE_URL every request has to carry its own price.
func buildPriceOracle(cfg *config.Config, redisClient *goredis.Client, appLogger zerolog.Logger) usecase.PriceOracle {
	if cfg.OracleURL == "" {
		appLogger.Warn().Msg("ORACLE_URL is not set; requests without an explicit price will fail")
		return usecase.NoPriceOracle{}
	}

	client := oracle.NewClient(cfg.OracleURL, cfg.OracleTimeout, oracle.WithLogger(appLogger))
	return redisRepo.NewCachedPriceOracle(client, redisRepo.NewPriceCache(redisClient), cfg.PriceCacheTTL, appLogger)
}
