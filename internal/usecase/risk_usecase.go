package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/risk"
)

// RiskUseCase answers read-only risk questions about credit lines.
type RiskUseCase struct {
	creditLineRepo CreditLineRepository
	paramsRepo     EconomicalParametersRepository
	currencyRepo   CurrencyRepository
	prices         *PriceResolver
}

// NewRiskUseCase creates a new RiskUseCase.
func NewRiskUseCase(
	creditLineRepo CreditLineRepository,
	paramsRepo EconomicalParametersRepository,
	currencyRepo CurrencyRepository,
	prices *PriceResolver,
) *RiskUseCase {
	return &RiskUseCase{
		creditLineRepo: creditLineRepo,
		paramsRepo:     paramsRepo,
		currencyRepo:   currencyRepo,
		prices:         prices,
	}
}

// RiskOverview is the risk picture of a line at a price, with interest
// pending since the last accrual already added to the debt.
type RiskOverview struct {
	Snapshot        *domain.CreditLineSnapshot
	Price           *big.Int
	PendingInterest *big.Int
	State           domain.CreditLineState
	risk.Assessment
}

// GetRiskOverview evaluates a credit line. A nil price means the oracle price.
func (uc *RiskUseCase) GetRiskOverview(ctx context.Context, creditLineID string, price *big.Int) (*RiskOverview, error) {
	snapshot, resolved, err := uc.load(ctx, creditLineID, price)
	if err != nil {
		return nil, err
	}

	pending := withPendingInterest(snapshot, time.Now().UTC())

	return &RiskOverview{
		Snapshot:        snapshot,
		Price:           resolved,
		PendingInterest: pending,
		State:           snapshot.State(),
		Assessment:      risk.Assess(snapshot, resolved),
	}, nil
}

// VerifyBorrowInput represents input for a borrow admission check.
type VerifyBorrowInput struct {
	Price        *big.Int
	Amount       *big.Int
	CreditLineID string
	Mode         risk.Mode
}

// VerifyBorrow returns domain.ErrInsufficientLiquidity when the borrow
// would not be admitted right now.
func (uc *RiskUseCase) VerifyBorrow(ctx context.Context, input VerifyBorrowInput) error {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	snapshot, price, err := uc.load(ctx, input.CreditLineID, input.Price)
	if err != nil {
		return err
	}
	if err := snapshot.CheckMutable(); err != nil {
		return err
	}

	withPendingInterest(snapshot, time.Now().UTC())
	return risk.VerifyBorrow(snapshot, price, input.Amount, input.Mode)
}

// VerifyWithdrawInput represents input for a withdraw admission check.
// Amount is a decimal string in collateral units.
type VerifyWithdrawInput struct {
	Price        *big.Int
	CreditLineID string
	Amount       string
	Mode         risk.Mode
}

// VerifyWithdraw returns domain.ErrInsufficientLiquidity when the withdraw
// would not be admitted right now.
func (uc *RiskUseCase) VerifyWithdraw(ctx context.Context, input VerifyWithdrawInput) error {
	snapshot, price, err := uc.load(ctx, input.CreditLineID, input.Price)
	if err != nil {
		return err
	}
	if err := snapshot.CheckMutable(); err != nil {
		return err
	}

	amount, err := parseCollateralAmount(input.Amount, snapshot.CollateralDecimals())
	if err != nil {
		return err
	}

	withPendingInterest(snapshot, time.Now().UTC())
	return risk.VerifyWithdraw(snapshot, price, amount, input.Mode)
}

// GetMaxAllowedBorrowAmount returns the unclamped borrowing headroom of a line.
func (uc *RiskUseCase) GetMaxAllowedBorrowAmount(ctx context.Context, creditLineID string, price *big.Int) (*big.Int, error) {
	snapshot, resolved, err := uc.load(ctx, creditLineID, price)
	if err != nil {
		return nil, err
	}

	withPendingInterest(snapshot, time.Now().UTC())
	return risk.GetMaxAllowedBorrowAmount(snapshot, resolved), nil
}

// ProjectOpenCreditLineInput represents input for projecting a new line.
// Deposit is a decimal string in collateral units.
type ProjectOpenCreditLineInput struct {
	Price            *big.Int
	CollateralSymbol string
	DebtSymbol       string
	Deposit          string
	Strategy         domain.RiskStrategy
}

// ProjectOpenCreditLine projects a line that does not exist yet using the
// freshest parameters of the currency pair.
func (uc *RiskUseCase) ProjectOpenCreditLine(ctx context.Context, input ProjectOpenCreditLineInput) (*domain.OpenCreditLineProjection, error) {
	collateralSymbol, err := domain.NormalizeSymbol(input.CollateralSymbol)
	if err != nil {
		return nil, err
	}
	debtSymbol, err := domain.NormalizeSymbol(input.DebtSymbol)
	if err != nil {
		return nil, err
	}

	collateral, err := uc.currencyRepo.GetBySymbol(ctx, collateralSymbol)
	if err != nil {
		return nil, err
	}
	debt, err := uc.currencyRepo.GetBySymbol(ctx, debtSymbol)
	if err != nil {
		return nil, err
	}

	params, err := uc.paramsRepo.GetFreshest(ctx, collateral.ID, debt.ID)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rate, err := input.Strategy.Rate(params)
	if err != nil {
		return nil, err
	}

	deposit, err := parseCollateralAmount(input.Deposit, collateral.Decimals)
	if err != nil {
		return nil, err
	}

	price, err := uc.prices.Resolve(ctx, collateral.Symbol, input.Price)
	if err != nil {
		return nil, err
	}

	projection := risk.ProjectOpenCreditLine(params, collateral.Decimals, deposit, price, rate)
	return &projection, nil
}

// GetEconomicalParameters returns the parameters a credit line was opened with.
func (uc *RiskUseCase) GetEconomicalParameters(ctx context.Context, creditLineID string) (*domain.EconomicalParameters, error) {
	return uc.paramsRepo.GetByCreditLine(ctx, creditLineID)
}

func (uc *RiskUseCase) load(ctx context.Context, creditLineID string, price *big.Int) (*domain.CreditLineSnapshot, *big.Int, error) {
	snapshot, err := uc.creditLineRepo.GetSnapshot(ctx, creditLineID)
	if err != nil {
		return nil, nil, err
	}
	if err := snapshot.Params.Validate(); err != nil {
		return nil, nil, err
	}

	resolved, err := uc.prices.Resolve(ctx, snapshot.CollateralCurrency.Symbol, price)
	if err != nil {
		return nil, nil, err
	}

	return snapshot, resolved, nil
}

// withPendingInterest adds the interest accrued since the last sweep to the
// snapshot's debt in memory and returns that interest.
func withPendingInterest(snapshot *domain.CreditLineSnapshot, now time.Time) *big.Int {
	if snapshot.IsLiquidated || snapshot.IsClosed {
		return new(big.Int)
	}

	result := risk.AccrueInterest(snapshot, now)
	snapshot.DebtAmount = result.NewDebtAmount
	return result.Interest
}

func parseCollateralAmount(value string, decimals uint) (*big.Int, error) {
	amount, err := fixedpoint.ParseUnits(value, decimals)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	return amount, nil
}
