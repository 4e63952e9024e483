package risk

import (
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
)

// HoursInYear is the number of accrual periods in a year.
const HoursInYear = 8760

var hoursInYear = big.NewInt(HoursInYear)

// HoursSinceAccrual returns the number of whole hours between accruedAt and
// now, or zero when now is not after accruedAt.
func HoursSinceAccrual(now, accruedAt time.Time) uint64 {
	elapsed := now.Sub(accruedAt)
	if elapsed <= 0 {
		return 0
	}
	return uint64(elapsed / time.Hour)
}

// CalculateInterestAccrued returns the interest owed on debt after hours at
// the given annual rate:
//
//	ratePerHour = apr * 10^18 / 8760
//	interest    = debt * ratePerHour * hours / 10^18 / 10^18
//
// apr is scaled up before the division by 8760 so the hourly rate keeps its
// precision, which is why the product is descaled twice. Non-positive debt
// accrues nothing.
func CalculateInterestAccrued(debt, apr *big.Int, hours uint64) *big.Int {
	if debt == nil || debt.Sign() <= 0 || apr == nil || apr.Sign() <= 0 || hours == 0 {
		return new(big.Int)
	}

	ratePerHour := new(big.Int).Mul(apr, exp())
	ratePerHour.Quo(ratePerHour, hoursInYear)

	interest := new(big.Int).Mul(debt, ratePerHour)
	interest.Mul(interest, new(big.Int).SetUint64(hours))
	interest.Quo(interest, exp())
	interest.Quo(interest, exp())
	return interest
}

// AccrueInterest computes the debt of snapshot at now. When less than an hour
// has passed the result carries the snapshot's values with Accrued unset.
// Otherwise the new accrual timestamp is now itself.
func AccrueInterest(snapshot *domain.CreditLineSnapshot, now time.Time) domain.AccrualResult {
	debt := copyOrZero(snapshot.DebtAmount)
	result := domain.AccrualResult{
		CreditLineID:      snapshot.ID,
		PreviousDebt:      debt,
		PreviousAccruedAt: snapshot.AccruedAt,
		Interest:          new(big.Int),
		NewDebtAmount:     new(big.Int).Set(debt),
		NewAccruedAt:      snapshot.AccruedAt,
	}

	hours := HoursSinceAccrual(now, snapshot.AccruedAt)
	if hours == 0 {
		return result
	}

	result.Hours = hours
	result.Interest = CalculateInterestAccrued(debt, snapshot.Params.APR, hours)
	result.NewDebtAmount.Add(debt, result.Interest)
	result.NewAccruedAt = now
	result.Accrued = true
	return result
}
