package risk

import (
	"math/big"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

// CalculateUtilizationRate returns debt / fiatCollateral scaled by 10^18, or
// zero when there is no collateral. The result is not clamped: it exceeds 1
// once the collateral value drops below the debt.
func CalculateUtilizationRate(fiatCollateral, debt *big.Int) *big.Int {
	if fixedpoint.IsZero(fiatCollateral) {
		return new(big.Int)
	}
	return fixedpoint.MulDivUnsigned(debt, exp(), fiatCollateral)
}

// ClassifyLiquidationRisk is advisory only and never gates an operation.
func ClassifyLiquidationRisk(utilization, collateralFactor *big.Int) domain.RiskLevel {
	switch {
	case utilization.Cmp(domain.MediumRiskStrategyRate()) <= 0:
		return domain.RiskLevelLow
	case utilization.Cmp(collateralFactor) <= 0:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}

// CalculateHealthyFactor returns fiatCollateral * liquidationFactor / debt.
// ok is false when the line has no debt.
func CalculateHealthyFactor(fiatCollateral, debt, liquidationFactor *big.Int) (factor *big.Int, ok bool) {
	if debt == nil || debt.Sign() <= 0 {
		return nil, false
	}
	return fixedpoint.MulDivUnsigned(fiatCollateral, liquidationFactor, debt), true
}

// IsLiquidatable reports whether a healthy factor has fallen below one.
func IsLiquidatable(healthyFactor *big.Int) bool {
	return healthyFactor != nil && healthyFactor.Cmp(exp()) < 0
}

// Assessment is the full risk picture of a line at a given price.
type Assessment struct {
	FiatCollateral   *big.Int
	UtilizationRate  *big.Int
	HealthyFactor    *big.Int
	MaxAllowedBorrow *big.Int
	RiskLevel        domain.RiskLevel
	HasHealthyFactor bool
	Liquidatable     bool
}

// Assess evaluates a snapshot at price.
func Assess(snapshot *domain.CreditLineSnapshot, price *big.Int) Assessment {
	fiat := ConvertRawToFiat(snapshot.RawCollateralAmount, snapshot.CollateralDecimals(), price)
	utilization := CalculateUtilizationRate(fiat, snapshot.DebtAmount)
	hf, ok := CalculateHealthyFactor(fiat, snapshot.DebtAmount, snapshot.Params.LiquidationFactor)

	return Assessment{
		FiatCollateral:   fiat,
		UtilizationRate:  utilization,
		RiskLevel:        ClassifyLiquidationRisk(utilization, snapshot.Params.CollateralFactor),
		HealthyFactor:    hf,
		HasHealthyFactor: ok,
		Liquidatable:     ok && IsLiquidatable(hf),
		MaxAllowedBorrow: GetMaxAllowedBorrowAmount(snapshot, price),
	}
}
