package domain

import (
	"math/big"
	"time"
)

// AccrualResult describes the outcome of accruing interest on one line.
// When Accrued is false no whole hour has elapsed and nothing changed.
type AccrualResult struct {
	PreviousAccruedAt time.Time
	NewAccruedAt      time.Time
	CreditLineID      string
	PreviousDebt      *big.Int
	Interest          *big.Int
	NewDebtAmount     *big.Int
	Hours             uint64
	Accrued           bool
}

// DebtAccrual is the persisted record of an applied accrual.
type DebtAccrual struct {
	AccruedAt      time.Time
	CreatedAt      time.Time
	ID             string
	CreditLineID   string
	InterestAmount *big.Int
	DebtBefore     *big.Int
	DebtAfter      *big.Int
	Hours          uint64
}
