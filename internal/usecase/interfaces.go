package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
)

// CreditLineRepository defines data access for credit lines.
//
// Every amount change is applied as a relative update in SQL so that
// concurrent writers never lose each other's deltas.
type CreditLineRepository interface {
	GetSnapshot(ctx context.Context, id string) (*domain.CreditLineSnapshot, error)
	GetSnapshotForUpdate(ctx context.Context, tx Transaction, id string) (*domain.CreditLineSnapshot, error)
	// ListAccruable returns IDs of lines that are neither liquidated nor
	// closed, ordered by ID and starting after afterID.
	ListAccruable(ctx context.Context, limit int, afterID string) ([]string, error)
	IncreaseDebtAmount(ctx context.Context, tx Transaction, id string, delta *big.Int) error
	DecreaseDebtAmount(ctx context.Context, tx Transaction, id string, delta *big.Int) error
	// ApplyAccrual adds delta to the debt and moves accrued_at from previous
	// to accruedAt. It returns domain.ErrAccrualConflict when accrued_at no
	// longer equals previous.
	ApplyAccrual(ctx context.Context, tx Transaction, id string, delta *big.Int, previous, accruedAt time.Time) error
	SetAccruedAt(ctx context.Context, tx Transaction, id string, accruedAt time.Time) error
	UpdateDepositAmount(ctx context.Context, tx Transaction, id string, rawAmount *big.Int) error
}

// EconomicalParametersRepository defines data access for economical parameters.
type EconomicalParametersRepository interface {
	GetFreshest(ctx context.Context, collateralCurrencyID, debtCurrencyID string) (*domain.EconomicalParameters, error)
	GetByCreditLine(ctx context.Context, creditLineID string) (*domain.EconomicalParameters, error)
}

// CurrencyRepository defines data access for currencies.
type CurrencyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Currency, error)
	GetBySymbol(ctx context.Context, symbol string) (*domain.Currency, error)
}

// DebtAccrualRepository defines data access for the accrual ledger.
type DebtAccrualRepository interface {
	Create(ctx context.Context, tx Transaction, accrual *domain.DebtAccrual) error
	ListByCreditLine(ctx context.Context, creditLineID string, limit, offset int) ([]*domain.DebtAccrual, error)
}

// PriceOracle supplies token prices as decimal strings in fiat.
type PriceOracle interface {
	GetTokenPriceBySymbol(ctx context.Context, symbol string) (string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation that failed with a transient database error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}
