package risk

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
)

// Mode selects the factor an admission check is measured against.
type Mode int

const (
	// ModeCollateralFactor is the conservative bound used for regular requests.
	ModeCollateralFactor Mode = iota + 1
	// ModeLiquidationFactor allows going right up to the liquidation trigger.
	ModeLiquidationFactor
)

func (m Mode) String() string {
	switch m {
	case ModeCollateralFactor:
		return "collateral_factor"
	case ModeLiquidationFactor:
		return "liquidation_factor"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "cf", "lf" or the full names. An empty string selects
// ModeCollateralFactor.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cf", "collateral_factor":
		return ModeCollateralFactor, nil
	case "lf", "liquidation_factor":
		return ModeLiquidationFactor, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidSolvencyMode, s)
	}
}

// Factor returns the rate of params selected by the mode.
func (m Mode) Factor(params *domain.EconomicalParameters) (*big.Int, error) {
	switch m {
	case ModeCollateralFactor:
		return params.CollateralFactor, nil
	case ModeLiquidationFactor:
		return params.LiquidationFactor, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSolvencyMode, m)
	}
}

// IsBorrowPossible reports whether borrowing amount keeps the total debt
// within the fiat value of factor * collateral.
func IsBorrowPossible(snapshot *domain.CreditLineSnapshot, price, amount, factor *big.Int) bool {
	allowed := applyRate(snapshot.RawCollateralAmount, factor)
	fiatAllowed := ConvertRawToFiat(allowed, snapshot.CollateralDecimals(), price)

	total := new(big.Int).Add(copyOrZero(snapshot.DebtAmount), copyOrZero(amount))
	return total.Cmp(fiatAllowed) <= 0
}

// IsBorrowPossibleCollateralFactor is IsBorrowPossible measured against the
// line's collateral factor.
func IsBorrowPossibleCollateralFactor(snapshot *domain.CreditLineSnapshot, price, amount *big.Int) bool {
	return IsBorrowPossible(snapshot, price, amount, snapshot.Params.CollateralFactor)
}

// IsBorrowPossibleLiquidationFactor is IsBorrowPossible measured against the
// line's liquidation factor.
func IsBorrowPossibleLiquidationFactor(snapshot *domain.CreditLineSnapshot, price, amount *big.Int) bool {
	return IsBorrowPossible(snapshot, price, amount, snapshot.Params.LiquidationFactor)
}

// VerifyBorrowOverCF returns domain.ErrInsufficientLiquidity when the borrow
// would exceed the collateral factor.
func VerifyBorrowOverCF(snapshot *domain.CreditLineSnapshot, price, amount *big.Int) error {
	return VerifyBorrow(snapshot, price, amount, ModeCollateralFactor)
}

// VerifyBorrowOverLF returns domain.ErrInsufficientLiquidity when the borrow
// would exceed the liquidation factor.
func VerifyBorrowOverLF(snapshot *domain.CreditLineSnapshot, price, amount *big.Int) error {
	return VerifyBorrow(snapshot, price, amount, ModeLiquidationFactor)
}

// VerifyBorrow is the mode-dispatched form of VerifyBorrowOverCF and VerifyBorrowOverLF.
func VerifyBorrow(snapshot *domain.CreditLineSnapshot, price, amount *big.Int, mode Mode) error {
	factor, err := mode.Factor(&snapshot.Params)
	if err != nil {
		return err
	}
	if !IsBorrowPossible(snapshot, price, amount, factor) {
		return fmt.Errorf("%w: borrowing %s over %s on credit line %s",
			domain.ErrInsufficientLiquidity,
			fixedpoint.FormatUnits(amount, fixedpoint.Decimals), mode, snapshot.ID)
	}
	return nil
}

// IsWithdrawPossible reports whether withdrawing raw collateral leaves the
// current debt within the fiat value of factor * remaining collateral.
func IsWithdrawPossible(snapshot *domain.CreditLineSnapshot, price, withdrawRaw, factor *big.Int) bool {
	remaining := new(big.Int).Sub(copyOrZero(snapshot.RawCollateralAmount), copyOrZero(withdrawRaw))
	if remaining.Sign() < 0 {
		return false
	}

	allowed := applyRate(remaining, factor)
	fiatAllowed := ConvertRawToFiat(allowed, snapshot.CollateralDecimals(), price)
	return copyOrZero(snapshot.DebtAmount).Cmp(fiatAllowed) <= 0
}

// VerifyWithdrawOverCF returns domain.ErrInsufficientLiquidity when the withdraw
// would leave the debt above the collateral factor.
func VerifyWithdrawOverCF(snapshot *domain.CreditLineSnapshot, price, withdrawRaw *big.Int) error {
	return VerifyWithdraw(snapshot, price, withdrawRaw, ModeCollateralFactor)
}

// VerifyWithdrawOverLF returns domain.ErrInsufficientLiquidity when the withdraw
// would leave the debt above the liquidation factor.
func VerifyWithdrawOverLF(snapshot *domain.CreditLineSnapshot, price, withdrawRaw *big.Int) error {
	return VerifyWithdraw(snapshot, price, withdrawRaw, ModeLiquidationFactor)
}

// VerifyWithdraw returns domain.ErrInsufficientLiquidity when the withdraw
// is larger than the deposit or would leave the debt under-collateralized.
func VerifyWithdraw(snapshot *domain.CreditLineSnapshot, price, withdrawRaw *big.Int, mode Mode) error {
	factor, err := mode.Factor(&snapshot.Params)
	if err != nil {
		return err
	}
	if !IsWithdrawPossible(snapshot, price, withdrawRaw, factor) {
		return fmt.Errorf("%w: withdrawing %s %s over %s on credit line %s",
			domain.ErrInsufficientLiquidity,
			fixedpoint.FormatUnits(withdrawRaw, snapshot.CollateralDecimals()),
			snapshot.CollateralCurrency.Symbol, mode, snapshot.ID)
	}
	return nil
}

// GetMaxAllowedBorrowAmount returns how much more fiat the line can borrow at
// price under the collateral factor, net of the fiat processing fee charged
// on that amount. The result is negative for an over-utilized line; callers
// clamp it before showing it to a user.
func GetMaxAllowedBorrowAmount(snapshot *domain.CreditLineSnapshot, price *big.Int) *big.Int {
	fiatCollateral := ConvertRawToFiat(snapshot.RawCollateralAmount, snapshot.CollateralDecimals(), price)
	capped := applyRate(fiatCollateral, snapshot.Params.CollateralFactor)

	free := new(big.Int).Sub(capped, copyOrZero(snapshot.DebtAmount))
	fee := fixedpoint.MulDiv(free, snapshot.Params.FiatProcessingFee, exp())
	return free.Sub(free, fee)
}
