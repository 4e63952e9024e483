package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/infrastructure/postgres/generated"
)

// EconomicalParametersRepository implements usecase.EconomicalParametersRepository.
type EconomicalParametersRepository struct {
	queries *generated.Queries
}

// NewEconomicalParametersRepository creates a new EconomicalParametersRepository.
func NewEconomicalParametersRepository(pool *pgxpool.Pool) *EconomicalParametersRepository {
	return newEconomicalParametersRepository(pool)
}

func newEconomicalParametersRepository(db generated.DBTX) *EconomicalParametersRepository {
	return &EconomicalParametersRepository{queries: generated.New(db)}
}

// GetFreshest returns the most recently created parameters for the pair.
func (r *EconomicalParametersRepository) GetFreshest(ctx context.Context, collateralCurrencyID, debtCurrencyID string) (*domain.EconomicalParameters, error) {
	row, err := r.queries.GetFreshestEconomicalParameters(ctx, generated.GetFreshestEconomicalParametersParams{
		CollateralCurrencyID: collateralCurrencyID,
		DebtCurrencyID:       debtCurrencyID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEconomicalParametersNotFound
		}
		return nil, err
	}

	return rowToParameters(row)
}

// GetByCreditLine returns the parameters a credit line was opened with.
func (r *EconomicalParametersRepository) GetByCreditLine(ctx context.Context, creditLineID string) (*domain.EconomicalParameters, error) {
	row, err := r.queries.GetEconomicalParametersByCreditLine(ctx, creditLineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreditLineNotFound
		}
		return nil, err
	}

	return rowToParameters(row)
}

func rowToParameters(row generated.EconomicalParameter) (*domain.EconomicalParameters, error) {
	var d numericDecoder

	params := &domain.EconomicalParameters{
		ID:                   row.ID,
		CollateralCurrencyID: row.CollateralCurrencyID,
		DebtCurrencyID:       row.DebtCurrencyID,
		APR:                  d.decode(row.Apr),
		LiquidationFee:       d.decode(row.LiquidationFee),
		CollateralFactor:     d.decode(row.CollateralFactor),
		LiquidationFactor:    d.decode(row.LiquidationFactor),
		FiatProcessingFee:    d.decode(row.FiatProcessingFee),
		CryptoProcessingFee:  d.decode(row.CryptoProcessingFee),
		CreatedAt:            row.CreatedAt.Time,
	}
	if d.err != nil {
		return nil, fmt.Errorf("decode economical parameters %s: %w", row.ID, d.err)
	}

	return params, nil
}
