package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/infrastructure/postgres/generated"
	"github.com/iho/gocredit/internal/usecase"
)

// DebtAccrualRepository implements usecase.DebtAccrualRepository.
type DebtAccrualRepository struct {
	queries *generated.Queries
}

// NewDebtAccrualRepository creates a new DebtAccrualRepository.
func NewDebtAccrualRepository(pool *pgxpool.Pool) *DebtAccrualRepository {
	return newDebtAccrualRepository(pool)
}

func newDebtAccrualRepository(db generated.DBTX) *DebtAccrualRepository {
	return &DebtAccrualRepository{queries: generated.New(db)}
}

// Create records an applied accrual inside tx.
func (r *DebtAccrualRepository) Create(ctx context.Context, tx usecase.Transaction, accrual *domain.DebtAccrual) error {
	interest, err := bigToNumeric(accrual.InterestAmount)
	if err != nil {
		return err
	}
	before, err := bigToNumeric(accrual.DebtBefore)
	if err != nil {
		return err
	}
	after, err := bigToNumeric(accrual.DebtAfter)
	if err != nil {
		return err
	}

	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	return queries.CreateDebtAccrual(ctx, generated.CreateDebtAccrualParams{
		ID:             accrual.ID,
		CreditLineID:   accrual.CreditLineID,
		Hours:          int64(accrual.Hours),
		InterestAmount: interest,
		DebtBefore:     before,
		DebtAfter:      after,
		AccruedAt:      timeToPgTimestamptz(accrual.AccruedAt),
		CreatedAt:      timeToPgTimestamptz(accrual.CreatedAt),
	})
}

// ListByCreditLine lists the accruals of a credit line, newest first.
func (r *DebtAccrualRepository) ListByCreditLine(ctx context.Context, creditLineID string, limit, offset int) ([]*domain.DebtAccrual, error) {
	rows, err := r.queries.ListDebtAccrualsByCreditLine(ctx, generated.ListDebtAccrualsByCreditLineParams{
		CreditLineID: creditLineID,
		Limit:        int32(limit),
		Offset:       int32(offset),
	})
	if err != nil {
		return nil, err
	}

	accruals := make([]*domain.DebtAccrual, 0, len(rows))
	for _, row := range rows {
		var d numericDecoder
		accrual := &domain.DebtAccrual{
			ID:             row.ID,
			CreditLineID:   row.CreditLineID,
			Hours:          uint64(row.Hours),
			InterestAmount: d.decode(row.InterestAmount),
			DebtBefore:     d.decode(row.DebtBefore),
			DebtAfter:      d.decode(row.DebtAfter),
			AccruedAt:      row.AccruedAt.Time,
			CreatedAt:      row.CreatedAt.Time,
		}
		if d.err != nil {
			return nil, fmt.Errorf("decode debt accrual %s: %w", row.ID, d.err)
		}
		accruals = append(accruals, accrual)
	}

	return accruals, nil
}
