package domain

import (
	"math/big"
	"time"
)

// CreditLineState is the lifecycle stage of a credit line, derived from its fields.
type CreditLineState string

const (
	CreditLineStateInitialized CreditLineState = "INITIALIZED"
	CreditLineStateActive      CreditLineState = "ACTIVE"
	CreditLineStateBorrowed    CreditLineState = "BORROWED"
	CreditLineStateClosed      CreditLineState = "CLOSED"
	CreditLineStateLiquidated  CreditLineState = "LIQUIDATED"
)

// CreditLine is a user's collateralized borrowing position.
//
// RawCollateralAmount is expressed in the collateral token's native decimals.
// DebtAmount and FeeAccumulatedFiatAmount are fiat amounts scaled by 10^18.
type CreditLine struct {
	AccruedAt                time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
	ID                       string
	UserID                   string
	CollateralCurrencyID     string
	DebtCurrencyID           string
	EconomicalParametersID   string
	RawCollateralAmount      *big.Int
	DebtAmount               *big.Int
	FeeAccumulatedFiatAmount *big.Int
	IsLiquidated             bool
	IsClosed                 bool
}

// State derives the lifecycle stage. Liquidation wins over closing.
func (c *CreditLine) State() CreditLineState {
	switch {
	case c.IsLiquidated:
		return CreditLineStateLiquidated
	case c.IsClosed:
		return CreditLineStateClosed
	case c.DebtAmount != nil && c.DebtAmount.Sign() > 0:
		return CreditLineStateBorrowed
	case c.RawCollateralAmount != nil && c.RawCollateralAmount.Sign() > 0:
		return CreditLineStateActive
	default:
		return CreditLineStateInitialized
	}
}

// CheckMutable returns an error when the line is in a terminal state.
func (c *CreditLine) CheckMutable() error {
	if c.IsLiquidated {
		return ErrCreditLineLiquidated
	}
	if c.IsClosed {
		return ErrCreditLineClosed
	}
	return nil
}

// CreditLineSnapshot is the read model consumed by the risk engine: a credit
// line with its parameters and both currencies resolved.
type CreditLineSnapshot struct {
	CreditLine
	Params             EconomicalParameters
	CollateralCurrency Currency
	DebtCurrency       Currency
}

// CollateralDecimals returns the native decimals of the collateral token.
func (s *CreditLineSnapshot) CollateralDecimals() uint {
	return s.CollateralCurrency.Decimals
}
