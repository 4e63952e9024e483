package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/infrastructure/postgres/generated"
	"github.com/iho/gocredit/internal/usecase"
)

// CreditLineRepository implements usecase.CreditLineRepository.
type CreditLineRepository struct {
	queries *generated.Queries
}

// NewCreditLineRepository creates a new CreditLineRepository.
func NewCreditLineRepository(pool *pgxpool.Pool) *CreditLineRepository {
	return newCreditLineRepository(pool)
}

func newCreditLineRepository(db generated.DBTX) *CreditLineRepository {
	return &CreditLineRepository{queries: generated.New(db)}
}

// GetSnapshot loads a credit line with its parameters and currencies.
func (r *CreditLineRepository) GetSnapshot(ctx context.Context, id string) (*domain.CreditLineSnapshot, error) {
	row, err := r.queries.GetCreditLineSnapshot(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreditLineNotFound
		}
		return nil, err
	}

	return rowToSnapshot(row)
}

// GetSnapshotForUpdate loads a credit line and locks its row until tx ends.
func (r *CreditLineRepository) GetSnapshotForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.CreditLineSnapshot, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetCreditLineSnapshotForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreditLineNotFound
		}
		return nil, err
	}

	return rowToSnapshot(row)
}

// ListAccruable returns IDs of open credit lines in ID order.
func (r *CreditLineRepository) ListAccruable(ctx context.Context, limit int, afterID string) ([]string, error) {
	return r.queries.ListAccruableCreditLineIDs(ctx, generated.ListAccruableCreditLineIDsParams{
		AfterID: afterID,
		Limit:   int32(limit),
	})
}

// IncreaseDebtAmount adds delta to the debt.
func (r *CreditLineRepository) IncreaseDebtAmount(ctx context.Context, tx usecase.Transaction, id string, delta *big.Int) error {
	numeric, err := bigToNumeric(delta)
	if err != nil {
		return err
	}

	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	affected, err := queries.IncreaseCreditLineDebt(ctx, generated.IncreaseCreditLineDebtParams{ID: id, Delta: numeric})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCreditLineNotFound
	}
	return nil
}

// DecreaseDebtAmount subtracts delta from the debt. The update matches no row
// when delta exceeds the stored debt.
func (r *CreditLineRepository) DecreaseDebtAmount(ctx context.Context, tx usecase.Transaction, id string, delta *big.Int) error {
	numeric, err := bigToNumeric(delta)
	if err != nil {
		return err
	}

	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	affected, err := queries.DecreaseCreditLineDebt(ctx, generated.DecreaseCreditLineDebtParams{ID: id, Delta: numeric})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: credit line %s", domain.ErrRepayExceedsDebt, id)
	}
	return nil
}

// ApplyAccrual adds delta to the debt and moves accrued_at, provided nobody
// accrued the line since previous was read.
func (r *CreditLineRepository) ApplyAccrual(ctx context.Context, tx usecase.Transaction, id string, delta *big.Int, previous, accruedAt time.Time) error {
	numeric, err := bigToNumeric(delta)
	if err != nil {
		return err
	}

	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	affected, err := queries.ApplyCreditLineAccrual(ctx, generated.ApplyCreditLineAccrualParams{
		ID:                id,
		Delta:             numeric,
		PreviousAccruedAt: timeToPgTimestamptz(previous),
		AccruedAt:         timeToPgTimestamptz(accruedAt),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: credit line %s", domain.ErrAccrualConflict, id)
	}
	return nil
}

// SetAccruedAt moves accrued_at without touching the debt.
func (r *CreditLineRepository) SetAccruedAt(ctx context.Context, tx usecase.Transaction, id string, accruedAt time.Time) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	affected, err := queries.SetCreditLineAccruedAt(ctx, generated.SetCreditLineAccruedAtParams{
		ID:        id,
		AccruedAt: timeToPgTimestamptz(accruedAt),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCreditLineNotFound
	}
	return nil
}

// UpdateDepositAmount overwrites the raw collateral amount. Callers hold the
// row lock taken by GetSnapshotForUpdate.
func (r *CreditLineRepository) UpdateDepositAmount(ctx context.Context, tx usecase.Transaction, id string, rawAmount *big.Int) error {
	numeric, err := bigToNumeric(rawAmount)
	if err != nil {
		return err
	}

	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	affected, err := queries.UpdateCreditLineDeposit(ctx, generated.UpdateCreditLineDepositParams{
		ID:                  id,
		RawCollateralAmount: numeric,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCreditLineNotFound
	}
	return nil
}

func rowToSnapshot(row generated.GetCreditLineSnapshotRow) (*domain.CreditLineSnapshot, error) {
	var d numericDecoder

	snapshot := &domain.CreditLineSnapshot{
		CreditLine: domain.CreditLine{
			ID:                       row.ID,
			UserID:                   row.UserID,
			CollateralCurrencyID:     row.CollateralCurrencyID,
			DebtCurrencyID:           row.DebtCurrencyID,
			EconomicalParametersID:   row.EconomicalParametersID,
			RawCollateralAmount:      d.decode(row.RawCollateralAmount),
			DebtAmount:               d.decode(row.DebtAmount),
			FeeAccumulatedFiatAmount: d.decode(row.FeeAccumulatedFiatAmount),
			IsLiquidated:             row.IsLiquidated,
			IsClosed:                 row.IsClosed,
			AccruedAt:                row.AccruedAt.Time,
			CreatedAt:                row.CreatedAt.Time,
			UpdatedAt:                row.UpdatedAt.Time,
		},
		Params: domain.EconomicalParameters{
			ID:                   row.EconomicalParametersID,
			CollateralCurrencyID: row.CollateralCurrencyID,
			DebtCurrencyID:       row.DebtCurrencyID,
			APR:                  d.decode(row.Apr),
			LiquidationFee:       d.decode(row.LiquidationFee),
			CollateralFactor:     d.decode(row.CollateralFactor),
			LiquidationFactor:    d.decode(row.LiquidationFactor),
			FiatProcessingFee:    d.decode(row.FiatProcessingFee),
			CryptoProcessingFee:  d.decode(row.CryptoProcessingFee),
			CreatedAt:            row.ParametersCreatedAt.Time,
		},
		CollateralCurrency: domain.Currency{
			ID:       row.CollateralCurrencyID,
			Symbol:   row.CollateralSymbol,
			Decimals: uint(row.CollateralDecimals),
			IsFiat:   row.CollateralIsFiat,
		},
		DebtCurrency: domain.Currency{
			ID:       row.DebtCurrencyID,
			Symbol:   row.DebtSymbol,
			Decimals: uint(row.DebtDecimals),
			IsFiat:   row.DebtIsFiat,
		},
	}
	if d.err != nil {
		return nil, fmt.Errorf("decode credit line %s: %w", row.ID, d.err)
	}

	return snapshot, nil
}
