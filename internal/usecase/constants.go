package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultSweepBatchSize is the page size of an accrual sweep when none is configured
	DefaultSweepBatchSize = 100

	// MaxSweepFailures caps the failures kept in a sweep report; the rest are only counted
	MaxSweepFailures = 100

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
