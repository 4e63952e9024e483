package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

// PriceResolver turns an optional caller-supplied price into a usable one,
// falling back to the oracle.
type PriceResolver struct {
	oracle PriceOracle
}

// NewPriceResolver creates a new PriceResolver.
func NewPriceResolver(oracle PriceOracle) *PriceResolver {
	return &PriceResolver{oracle: oracle}
}

// Resolve returns explicit when it is set, otherwise the oracle's price for
// symbol parsed at 18 decimals. Prices must be positive.
func (r *PriceResolver) Resolve(ctx context.Context, symbol string, explicit *big.Int) (*big.Int, error) {
	if explicit != nil {
		if explicit.Sign() <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidAmount)
		}
		return new(big.Int).Set(explicit), nil
	}

	raw, err := r.oracle.GetTokenPriceBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPriceUnavailable, symbol, err)
	}

	price, err := fixedpoint.ParseUnits(raw, fixedpoint.Decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: oracle returned %q: %v", domain.ErrPriceUnavailable, symbol, raw, err)
	}
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s: oracle returned non-positive price %q", domain.ErrPriceUnavailable, symbol, raw)
	}

	return price, nil
}

// ErrNoPriceOracle is returned by NoPriceOracle.
var ErrNoPriceOracle = errors.New("no price oracle configured")

// NoPriceOracle stands in when no oracle is configured; every request must
// then carry its own price.
type NoPriceOracle struct{}

// GetTokenPriceBySymbol implements PriceOracle.
func (NoPriceOracle) GetTokenPriceBySymbol(context.Context, string) (string, error) {
	return "", ErrNoPriceOracle
}
