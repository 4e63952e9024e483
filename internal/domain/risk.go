package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/iho/gocredit/internal/fixedpoint"
)

// RiskLevel is an advisory classification of a line's utilization.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// RiskStrategy is the borrowing appetite a user picks when opening a line.
type RiskStrategy string

const (
	RiskStrategyLow    RiskStrategy = "LOW"
	RiskStrategyMedium RiskStrategy = "MEDIUM"
	RiskStrategyHigh   RiskStrategy = "HIGH"
)

var (
	lowRiskStrategyRate    = fixedpoint.MustParseUnits("0.5", fixedpoint.Decimals)
	mediumRiskStrategyRate = fixedpoint.MustParseUnits("0.6", fixedpoint.Decimals)
)

// MediumRiskStrategyRate returns 0.6, the utilization above which a line is no
// longer considered low risk.
func MediumRiskStrategyRate() *big.Int {
	return new(big.Int).Set(mediumRiskStrategyRate)
}

// ParseRiskStrategy accepts the strategy name in any case.
func ParseRiskStrategy(s string) (RiskStrategy, error) {
	switch RiskStrategy(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskStrategyLow:
		return RiskStrategyLow, nil
	case RiskStrategyMedium:
		return RiskStrategyMedium, nil
	case RiskStrategyHigh:
		return RiskStrategyHigh, nil
	default:
		return "", fmt.Errorf("%w: unknown risk strategy %q", ErrInvalidRiskStrategy, s)
	}
}

// Rate returns the share of the supplied collateral value the strategy
// borrows. HIGH borrows up to the pair's collateral factor.
func (s RiskStrategy) Rate(params *EconomicalParameters) (*big.Int, error) {
	switch s {
	case RiskStrategyLow:
		return new(big.Int).Set(lowRiskStrategyRate), nil
	case RiskStrategyMedium:
		return new(big.Int).Set(mediumRiskStrategyRate), nil
	case RiskStrategyHigh:
		if params == nil || params.CollateralFactor == nil {
			return nil, fmt.Errorf("%w: collateral factor is not set", ErrMisconfiguredFactors)
		}
		return new(big.Int).Set(params.CollateralFactor), nil
	default:
		return nil, fmt.Errorf("%w: unknown risk strategy %q", ErrInvalidRiskStrategy, string(s))
	}
}
