package domain

import "errors"

var (
	// Credit line errors
	ErrCreditLineNotFound   = errors.New("credit line not found")
	ErrCreditLineLiquidated = errors.New("credit line is liquidated")
	ErrCreditLineClosed     = errors.New("credit line is closed")
	ErrAccrualConflict      = errors.New("credit line was accrued concurrently")

	// Solvency errors
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrRepayExceedsDebt      = errors.New("repay amount exceeds debt")
	ErrInvalidAmount         = errors.New("amount must be positive")

	// Reference data errors
	ErrEconomicalParametersNotFound = errors.New("economical parameters not found")
	ErrMisconfiguredFactors         = errors.New("economical parameters are misconfigured")
	ErrCurrencyNotFound             = errors.New("currency not found")

	// Price errors
	ErrPriceUnavailable = errors.New("price unavailable")
)
