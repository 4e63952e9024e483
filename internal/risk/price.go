// Package risk is the credit-line risk engine: collateral valuation,
// utilization, interest accrual, borrow/withdraw admission and projections for
// lines that are about to be opened.
//
// Every function is pure. Fiat amounts, prices and rates are *big.Int values
// scaled by 10^18; collateral amounts use the token's native decimals and are
// only ever turned into fiat by ConvertRawToFiat. Arguments are never mutated
// and every returned value is freshly allocated.
package risk

import (
	"math/big"

	"github.com/iho/gocredit/internal/fixedpoint"
)

// ConvertRawToFiat values raw collateral at unitPrice:
//
//	raw * unitPrice / 10^nativeDecimals
//
// The division truncates toward zero, so collateral is never overstated.
func ConvertRawToFiat(raw *big.Int, nativeDecimals uint, unitPrice *big.Int) *big.Int {
	return fixedpoint.MulDivUnsigned(raw, unitPrice, fixedpoint.Pow10(nativeDecimals))
}

func exp() *big.Int {
	return fixedpoint.ExpScale()
}

// applyRate returns amount * rate / 10^18.
func applyRate(amount, rate *big.Int) *big.Int {
	return fixedpoint.MulDivUnsigned(amount, rate, exp())
}

func copyOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
