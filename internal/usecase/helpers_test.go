package usecase_test

import (
	"fmt"
	"math/big"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

func usd(v string) *big.Int {
	return fixedpoint.MustParseUnits(v, fixedpoint.Decimals)
}

func btc(v string) *big.Int {
	return fixedpoint.MustParseUnits(v, 8)
}

func testParams() domain.EconomicalParameters {
	return domain.EconomicalParameters{
		ID:                   "params-1",
		CollateralCurrencyID: "cur-btc",
		DebtCurrencyID:       "cur-usd",
		APR:                  usd("0.12"),
		LiquidationFee:       usd("0.05"),
		CollateralFactor:     usd("0.7"),
		LiquidationFactor:    usd("0.8"),
		FiatProcessingFee:    usd("0.01"),
		CryptoProcessingFee:  usd("0.005"),
	}
}

func newSnapshot(id, collateral, debt string, accruedAt time.Time) *domain.CreditLineSnapshot {
	return &domain.CreditLineSnapshot{
		CreditLine: domain.CreditLine{
			ID:                       id,
			UserID:                   "user-1",
			CollateralCurrencyID:     "cur-btc",
			DebtCurrencyID:           "cur-usd",
			EconomicalParametersID:   "params-1",
			RawCollateralAmount:      btc(collateral),
			DebtAmount:               usd(debt),
			FeeAccumulatedFiatAmount: new(big.Int),
			AccruedAt:                accruedAt,
		},
		Params:             testParams(),
		CollateralCurrency: domain.Currency{ID: "cur-btc", Symbol: "BTC", Decimals: 8},
		DebtCurrency:       domain.Currency{ID: "cur-usd", Symbol: "USD", Decimals: 18, IsFiat: true},
	}
}

// bigEq matches a *big.Int by value.
type bigEq struct{ want *big.Int }

func eqBig(want *big.Int) gomock.Matcher { return bigEq{want: want} }

func (m bigEq) Matches(x any) bool {
	v, ok := x.(*big.Int)
	return ok && v != nil && v.Cmp(m.want) == 0
}

func (m bigEq) String() string { return fmt.Sprintf("is equal to %s", m.want) }
