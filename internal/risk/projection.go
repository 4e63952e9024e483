package risk

import (
	"math/big"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

// ProjectOpenCreditLine computes what a line opened with deposit (raw, in
// collateralDecimals) would look like at price when borrowing
// riskStrategyRate of the supplied value.
//
// CollateralLimitPrice is the collateral price at which the projected borrow
// would consume the whole deposit: borrowUSD * 10^decimals / deposit. It is
// zero for an empty deposit.
func ProjectOpenCreditLine(
	params *domain.EconomicalParameters,
	collateralDecimals uint,
	deposit, price, riskStrategyRate *big.Int,
) domain.OpenCreditLineProjection {
	supply := ConvertRawToFiat(deposit, collateralDecimals, price)
	borrow := applyRate(supply, riskStrategyRate)

	limitPrice := new(big.Int)
	if !fixedpoint.IsZero(deposit) {
		limitPrice = fixedpoint.MulDiv(borrow, fixedpoint.Pow10(collateralDecimals), deposit)
	}

	supplyFee := applyRate(supply, params.FiatProcessingFee)
	borrowFee := applyRate(borrow, params.CryptoProcessingFee)

	return domain.OpenCreditLineProjection{
		SupplyUSD:            supply,
		BorrowUSD:            borrow,
		CollateralAmountUSD:  applyRate(supply, params.CollateralFactor),
		CollateralLimitPrice: limitPrice,
		SupplyProcFeeUSD:     supplyFee,
		BorrowProcFeeUSD:     borrowFee,
		TotalProcFeeUSD:      new(big.Int).Add(supplyFee, borrowFee),
	}
}
