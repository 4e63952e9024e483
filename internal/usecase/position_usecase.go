package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/risk"
)

// PositionUseCase applies confirmed collateral and debt movements.
//
// Each movement runs in its own transaction: the line is locked, pending
// interest is accrued, the movement is checked against the line's
// parameters and only then written.
type PositionUseCase struct {
	txManager      TransactionManager
	creditLineRepo CreditLineRepository
	accrualRepo    DebtAccrualRepository
	idGen          IDGenerator
	retrier        Retrier
	prices         *PriceResolver
}

// NewPositionUseCase creates a new PositionUseCase.
func NewPositionUseCase(
	txManager TransactionManager,
	creditLineRepo CreditLineRepository,
	accrualRepo DebtAccrualRepository,
	idGen IDGenerator,
	retrier Retrier,
	prices *PriceResolver,
) *PositionUseCase {
	return &PositionUseCase{
		txManager:      txManager,
		creditLineRepo: creditLineRepo,
		accrualRepo:    accrualRepo,
		idGen:          idGen,
		retrier:        retrier,
		prices:         prices,
	}
}

// MovementResult is the state of a line after a movement was applied.
type MovementResult struct {
	Accrual             domain.AccrualResult
	RawCollateralAmount *big.Int
	DebtAmount          *big.Int
	CreditLineID        string
	CollateralDecimals  uint
}

// CollateralMovementInput represents a deposit or withdraw. Amount is a
// decimal string in collateral units. Mode and Price only apply to withdraws.
type CollateralMovementInput struct {
	Price        *big.Int
	CreditLineID string
	Amount       string
	Mode         risk.Mode
}

// DebtMovementInput represents a borrow or repay. Amount is a fiat amount
// scaled by 10^18. Mode and Price only apply to borrows.
type DebtMovementInput struct {
	Price        *big.Int
	Amount       *big.Int
	CreditLineID string
	Mode         risk.Mode
}

// Deposit adds collateral to a line.
func (uc *PositionUseCase) Deposit(ctx context.Context, input CollateralMovementInput) (*MovementResult, error) {
	return uc.apply(ctx, input.CreditLineID, false, nil, func(ctx context.Context, tx Transaction, s *domain.CreditLineSnapshot, _ *big.Int) error {
		amount, err := parseCollateralAmount(input.Amount, s.CollateralDecimals())
		if err != nil {
			return err
		}

		newRaw := new(big.Int).Add(s.RawCollateralAmount, amount)
		if err := fixedpoint.CheckInt256(newRaw); err != nil {
			return err
		}
		if err := uc.creditLineRepo.UpdateDepositAmount(ctx, tx, s.ID, newRaw); err != nil {
			return err
		}

		s.RawCollateralAmount = newRaw
		return nil
	})
}

// Withdraw removes collateral from a line if the remaining collateral still
// covers the debt under the requested mode.
func (uc *PositionUseCase) Withdraw(ctx context.Context, input CollateralMovementInput) (*MovementResult, error) {
	return uc.apply(ctx, input.CreditLineID, true, input.Price, func(ctx context.Context, tx Transaction, s *domain.CreditLineSnapshot, price *big.Int) error {
		amount, err := parseCollateralAmount(input.Amount, s.CollateralDecimals())
		if err != nil {
			return err
		}
		if err := risk.VerifyWithdraw(s, price, amount, input.Mode); err != nil {
			return err
		}

		newRaw := new(big.Int).Sub(s.RawCollateralAmount, amount)
		if err := uc.creditLineRepo.UpdateDepositAmount(ctx, tx, s.ID, newRaw); err != nil {
			return err
		}

		s.RawCollateralAmount = newRaw
		return nil
	})
}

// Borrow adds debt to a line if the collateral covers it under the requested mode.
func (uc *PositionUseCase) Borrow(ctx context.Context, input DebtMovementInput) (*MovementResult, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.apply(ctx, input.CreditLineID, true, input.Price, func(ctx context.Context, tx Transaction, s *domain.CreditLineSnapshot, price *big.Int) error {
		if err := risk.VerifyBorrow(s, price, input.Amount, input.Mode); err != nil {
			return err
		}
		if err := uc.creditLineRepo.IncreaseDebtAmount(ctx, tx, s.ID, input.Amount); err != nil {
			return err
		}

		s.DebtAmount = new(big.Int).Add(s.DebtAmount, input.Amount)
		return nil
	})
}

// Repay reduces the debt of a line. Repaying more than is owed, including
// interest accrued up to now, is rejected.
func (uc *PositionUseCase) Repay(ctx context.Context, input DebtMovementInput) (*MovementResult, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.apply(ctx, input.CreditLineID, false, nil, func(ctx context.Context, tx Transaction, s *domain.CreditLineSnapshot, _ *big.Int) error {
		if input.Amount.Cmp(s.DebtAmount) > 0 {
			return fmt.Errorf("%w: repaying %s of %s",
				domain.ErrRepayExceedsDebt,
				fixedpoint.FormatUnits(input.Amount, fixedpoint.Decimals),
				fixedpoint.FormatUnits(s.DebtAmount, fixedpoint.Decimals))
		}
		if err := uc.creditLineRepo.DecreaseDebtAmount(ctx, tx, s.ID, input.Amount); err != nil {
			return err
		}

		s.DebtAmount = new(big.Int).Sub(s.DebtAmount, input.Amount)
		return nil
	})
}

type movement func(ctx context.Context, tx Transaction, snapshot *domain.CreditLineSnapshot, price *big.Int) error

func (uc *PositionUseCase) apply(ctx context.Context, creditLineID string, needsPrice bool, explicitPrice *big.Int, fn movement) (*MovementResult, error) {
	// The price is fetched before any row is locked.
	var price *big.Int
	if needsPrice {
		current, err := uc.creditLineRepo.GetSnapshot(ctx, creditLineID)
		if err != nil {
			return nil, err
		}
		if err := current.CheckMutable(); err != nil {
			return nil, err
		}
		price, err = uc.prices.Resolve(ctx, current.CollateralCurrency.Symbol, explicitPrice)
		if err != nil {
			return nil, err
		}
	}

	var result *MovementResult
	err := inTransaction(ctx, uc.txManager, uc.retrier, func(ctx context.Context, tx Transaction) error {
		snapshot, err := uc.creditLineRepo.GetSnapshotForUpdate(ctx, tx, creditLineID)
		if err != nil {
			return err
		}
		if err := snapshot.CheckMutable(); err != nil {
			return err
		}
		if err := snapshot.Params.Validate(); err != nil {
			return err
		}

		accrual, err := applyAccrual(ctx, tx, uc.creditLineRepo, uc.accrualRepo, uc.idGen, snapshot, time.Now().UTC())
		if err != nil {
			return err
		}

		if err := fn(ctx, tx, snapshot, price); err != nil {
			return err
		}

		result = &MovementResult{
			CreditLineID:        snapshot.ID,
			Accrual:             accrual,
			RawCollateralAmount: snapshot.RawCollateralAmount,
			DebtAmount:          snapshot.DebtAmount,
			CollateralDecimals:  snapshot.CollateralDecimals(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
