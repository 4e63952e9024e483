package risk

import (
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

func usd(v string) *big.Int {
	return fixedpoint.MustParseUnits(v, fixedpoint.Decimals)
}

func raw(v string, decimals uint) *big.Int {
	return fixedpoint.MustParseUnits(v, decimals)
}

func testParams() domain.EconomicalParameters {
	return domain.EconomicalParameters{
		ID:                  "params-1",
		APR:                 usd("0.12"),
		LiquidationFee:      usd("0.05"),
		CollateralFactor:    usd("0.7"),
		LiquidationFactor:   usd("0.8"),
		FiatProcessingFee:   usd("0.01"),
		CryptoProcessingFee: usd("0.005"),
		CreatedAt:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// btcSnapshot builds a BTC-collateralized line with the given collateral and debt.
func btcSnapshot(collateral, debt string) *domain.CreditLineSnapshot {
	return &domain.CreditLineSnapshot{
		CreditLine: domain.CreditLine{
			ID:                       "line-1",
			RawCollateralAmount:      raw(collateral, 8),
			DebtAmount:               usd(debt),
			FeeAccumulatedFiatAmount: new(big.Int),
			AccruedAt:                time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Params:             testParams(),
		CollateralCurrency: domain.Currency{ID: "btc", Symbol: "BTC", Decimals: 8},
		DebtCurrency:       domain.Currency{ID: "usd", Symbol: "USD", Decimals: 18, IsFiat: true},
	}
}
