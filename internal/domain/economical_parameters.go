package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/fixedpoint"
)

// EconomicalParameters holds the rates of one collateral/debt currency pair.
// Rows are immutable; the most recently created row for a pair is the
// freshest one. Every rate is a fraction scaled by 10^18.
type EconomicalParameters struct {
	CreatedAt            time.Time
	ID                   string
	CollateralCurrencyID string
	DebtCurrencyID       string
	APR                  *big.Int
	LiquidationFee       *big.Int
	CollateralFactor     *big.Int
	LiquidationFactor    *big.Int
	FiatProcessingFee    *big.Int
	CryptoProcessingFee  *big.Int
}

// Validate checks that every rate lies in [0, 1] and that the collateral
// factor does not exceed the liquidation factor. APR is only required to be
// non-negative.
func (p *EconomicalParameters) Validate() error {
	one := fixedpoint.ExpScale()

	if p.APR == nil || p.APR.Sign() < 0 {
		return fmt.Errorf("%w: apr must be non-negative", ErrMisconfiguredFactors)
	}

	fractions := []struct {
		name  string
		value *big.Int
	}{
		{"liquidation_fee", p.LiquidationFee},
		{"collateral_factor", p.CollateralFactor},
		{"liquidation_factor", p.LiquidationFactor},
		{"fiat_processing_fee", p.FiatProcessingFee},
		{"crypto_processing_fee", p.CryptoProcessingFee},
	}
	for _, f := range fractions {
		if f.value == nil || f.value.Sign() < 0 || f.value.Cmp(one) > 0 {
			return fmt.Errorf("%w: %s must be within [0, 1]", ErrMisconfiguredFactors, f.name)
		}
	}

	if p.CollateralFactor.Cmp(p.LiquidationFactor) > 0 {
		return fmt.Errorf("%w: collateral factor %s exceeds liquidation factor %s",
			ErrMisconfiguredFactors,
			fixedpoint.FormatUnits(p.CollateralFactor, fixedpoint.Decimals),
			fixedpoint.FormatUnits(p.LiquidationFactor, fixedpoint.Decimals))
	}

	return nil
}
