package dto

import (
	"fmt"
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/risk"
	"github.com/iho/gocredit/internal/usecase"
)

// Amounts travel as decimal strings ("1000.5"). Fiat amounts and prices are
// parsed at 18 decimals; collateral amounts are parsed by the use case at the
// collateral token's decimals.

// ParseFiat parses a fiat amount or price.
func ParseFiat(value string) (*big.Int, error) {
	return fixedpoint.ParseUnits(value, fixedpoint.Decimals)
}

// ParseOptionalPrice parses a price that may be omitted.
func ParseOptionalPrice(value *string) (*big.Int, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	price, err := ParseFiat(*value)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	return price, nil
}

// VerifyBorrowRequest asks whether a borrow would be admitted.
type VerifyBorrowRequest struct {
	Price  *string `json:"price,omitempty"`
	Amount string  `json:"amount"`
	Mode   string  `json:"mode"`
}

// ToUseCaseInput converts to use case input.
func (r *VerifyBorrowRequest) ToUseCaseInput(creditLineID string) (usecase.VerifyBorrowInput, error) {
	amount, err := ParseFiat(r.Amount)
	if err != nil {
		return usecase.VerifyBorrowInput{}, fmt.Errorf("amount: %w", err)
	}
	mode, err := risk.ParseMode(r.Mode)
	if err != nil {
		return usecase.VerifyBorrowInput{}, err
	}
	price, err := ParseOptionalPrice(r.Price)
	if err != nil {
		return usecase.VerifyBorrowInput{}, err
	}

	return usecase.VerifyBorrowInput{
		Price:        price,
		Amount:       amount,
		CreditLineID: creditLineID,
		Mode:         mode,
	}, nil
}

// VerifyWithdrawRequest asks whether a withdraw would be admitted. Amount is
// in collateral units.
type VerifyWithdrawRequest struct {
	Price  *string `json:"price,omitempty"`
	Amount string  `json:"amount"`
	Mode   string  `json:"mode"`
}

// ToUseCaseInput converts to use case input.
func (r *VerifyWithdrawRequest) ToUseCaseInput(creditLineID string) (usecase.VerifyWithdrawInput, error) {
	mode, err := risk.ParseMode(r.Mode)
	if err != nil {
		return usecase.VerifyWithdrawInput{}, err
	}
	price, err := ParseOptionalPrice(r.Price)
	if err != nil {
		return usecase.VerifyWithdrawInput{}, err
	}

	return usecase.VerifyWithdrawInput{
		Price:        price,
		CreditLineID: creditLineID,
		Amount:       r.Amount,
		Mode:         mode,
	}, nil
}

// CollateralMovementRequest deposits or withdraws collateral. Mode and Price
// only apply to withdraws.
type CollateralMovementRequest struct {
	Price  *string `json:"price,omitempty"`
	Amount string  `json:"amount"`
	Mode   string  `json:"mode,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CollateralMovementRequest) ToUseCaseInput(creditLineID string) (usecase.CollateralMovementInput, error) {
	mode, err := risk.ParseMode(r.Mode)
	if err != nil {
		return usecase.CollateralMovementInput{}, err
	}
	price, err := ParseOptionalPrice(r.Price)
	if err != nil {
		return usecase.CollateralMovementInput{}, err
	}

	return usecase.CollateralMovementInput{
		Price:        price,
		CreditLineID: creditLineID,
		Amount:       r.Amount,
		Mode:         mode,
	}, nil
}

// DebtMovementRequest borrows or repays. Mode and Price only apply to borrows.
type DebtMovementRequest struct {
	Price  *string `json:"price,omitempty"`
	Amount string  `json:"amount"`
	Mode   string  `json:"mode,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DebtMovementRequest) ToUseCaseInput(creditLineID string) (usecase.DebtMovementInput, error) {
	amount, err := ParseFiat(r.Amount)
	if err != nil {
		return usecase.DebtMovementInput{}, fmt.Errorf("amount: %w", err)
	}
	mode, err := risk.ParseMode(r.Mode)
	if err != nil {
		return usecase.DebtMovementInput{}, err
	}
	price, err := ParseOptionalPrice(r.Price)
	if err != nil {
		return usecase.DebtMovementInput{}, err
	}

	return usecase.DebtMovementInput{
		Price:        price,
		Amount:       amount,
		CreditLineID: creditLineID,
		Mode:         mode,
	}, nil
}

// ProjectOpenCreditLineRequest projects a credit line before it is opened.
type ProjectOpenCreditLineRequest struct {
	Price            *string `json:"price,omitempty"`
	CollateralSymbol string  `json:"collateral_symbol"`
	DebtSymbol       string  `json:"debt_symbol"`
	Deposit          string  `json:"deposit"`
	RiskStrategy     string  `json:"risk_strategy"`
}

// ToUseCaseInput converts to use case input. The strategy defaults to MEDIUM.
func (r *ProjectOpenCreditLineRequest) ToUseCaseInput() (usecase.ProjectOpenCreditLineInput, error) {
	strategy := domain.RiskStrategyMedium
	if r.RiskStrategy != "" {
		parsed, err := domain.ParseRiskStrategy(r.RiskStrategy)
		if err != nil {
			return usecase.ProjectOpenCreditLineInput{}, err
		}
		strategy = parsed
	}
	price, err := ParseOptionalPrice(r.Price)
	if err != nil {
		return usecase.ProjectOpenCreditLineInput{}, err
	}

	return usecase.ProjectOpenCreditLineInput{
		Price:            price,
		CollateralSymbol: r.CollateralSymbol,
		DebtSymbol:       r.DebtSymbol,
		Deposit:          r.Deposit,
		Strategy:         strategy,
	}, nil
}

// AccrueRequest accrues interest up to At, or up to now when At is omitted.
// Interest is never accrued ahead of now.
type AccrueRequest struct {
	At *time.Time `json:"at,omitempty"`
}

// Time returns the requested accrual time in UTC.
func (r *AccrueRequest) Time(now time.Time) time.Time {
	if r.At == nil || r.At.IsZero() || r.At.After(now) {
		return now.UTC()
	}
	return r.At.UTC()
}
