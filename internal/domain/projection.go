package domain

import "math/big"

// OpenCreditLineProjection is the set of numbers shown to a user before a
// credit line is opened. All values are fiat amounts scaled by 10^18.
type OpenCreditLineProjection struct {
	SupplyUSD            *big.Int
	BorrowUSD            *big.Int
	CollateralAmountUSD  *big.Int
	CollateralLimitPrice *big.Int
	SupplyProcFeeUSD     *big.Int
	BorrowProcFeeUSD     *big.Int
	TotalProcFeeUSD      *big.Int
}
