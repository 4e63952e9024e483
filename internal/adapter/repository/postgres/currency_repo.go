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

// CurrencyRepository implements usecase.CurrencyRepository.
type CurrencyRepository struct {
	queries *generated.Queries
}

// NewCurrencyRepository creates a new CurrencyRepository.
func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return newCurrencyRepository(pool)
}

func newCurrencyRepository(db generated.DBTX) *CurrencyRepository {
	return &CurrencyRepository{queries: generated.New(db)}
}

// GetByID retrieves a currency by ID.
func (r *CurrencyRepository) GetByID(ctx context.Context, id string) (*domain.Currency, error) {
	row, err := r.queries.GetCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, id)
		}
		return nil, err
	}

	return rowToCurrency(row), nil
}

// GetBySymbol retrieves a currency by its ticker symbol.
func (r *CurrencyRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.Currency, error) {
	row, err := r.queries.GetCurrencyBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, symbol)
		}
		return nil, err
	}

	return rowToCurrency(row), nil
}

func rowToCurrency(row generated.Currency) *domain.Currency {
	return &domain.Currency{
		ID:       row.ID,
		Symbol:   row.Symbol,
		Decimals: uint(row.Decimals),
		IsFiat:   row.IsFiat,
	}
}
