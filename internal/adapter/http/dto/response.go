package dto

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/usecase"
)

// Amount carries a scaled integer together with its human-readable value.
type Amount struct {
	Raw   string          `json:"raw"`
	Value decimal.Decimal `json:"value"`
}

// NewAmount renders v, scaled by 10^decimals.
func NewAmount(v *big.Int, decimals uint) Amount {
	if v == nil {
		v = new(big.Int)
	}
	return Amount{
		Raw:   v.String(),
		Value: decimal.NewFromBigInt(v, -int32(decimals)),
	}
}

// Fiat renders a fiat amount, price or rate scaled by 10^18.
func Fiat(v *big.Int) Amount {
	return NewAmount(v, fixedpoint.Decimals)
}

// Percent renders a rate scaled by 10^18 as a truncated percentage.
func Percent(v *big.Int) string {
	out, err := fixedpoint.FormatPercent(v, fixedpoint.Decimals)
	if err != nil {
		return ""
	}
	return out
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RiskOverviewResponse represents the risk picture of a credit line.
type RiskOverviewResponse struct {
	HealthyFactor          *Amount `json:"healthy_factor"`
	CreditLineID           string  `json:"credit_line_id"`
	State                  string  `json:"state"`
	CollateralSymbol       string  `json:"collateral_symbol"`
	RiskLevel              string  `json:"risk_level"`
	UtilizationRatePercent string  `json:"utilization_rate_percent"`
	Price                  Amount  `json:"price"`
	RawCollateralAmount    Amount  `json:"raw_collateral_amount"`
	FiatCollateral         Amount  `json:"fiat_collateral"`
	DebtAmount             Amount  `json:"debt_amount"`
	PendingInterest        Amount  `json:"pending_interest"`
	UtilizationRate        Amount  `json:"utilization_rate"`
	MaxAllowedBorrow       Amount  `json:"max_allowed_borrow"`
	Liquidatable           bool    `json:"liquidatable"`
}

// RiskOverviewFromUseCase converts a risk overview to response.
func RiskOverviewFromUseCase(o *usecase.RiskOverview) *RiskOverviewResponse {
	resp := &RiskOverviewResponse{
		CreditLineID:           o.Snapshot.ID,
		State:                  string(o.State),
		CollateralSymbol:       o.Snapshot.CollateralCurrency.Symbol,
		RiskLevel:              string(o.RiskLevel),
		UtilizationRatePercent: Percent(o.UtilizationRate),
		Price:                  Fiat(o.Price),
		RawCollateralAmount:    NewAmount(o.Snapshot.RawCollateralAmount, o.Snapshot.CollateralDecimals()),
		FiatCollateral:         Fiat(o.FiatCollateral),
		DebtAmount:             Fiat(o.Snapshot.DebtAmount),
		PendingInterest:        Fiat(o.PendingInterest),
		UtilizationRate:        Fiat(o.UtilizationRate),
		MaxAllowedBorrow:       Fiat(o.MaxAllowedBorrow),
		Liquidatable:           o.Liquidatable,
	}
	if o.HasHealthyFactor {
		hf := Fiat(o.HealthyFactor)
		resp.HealthyFactor = &hf
	}
	return resp
}

// MaxBorrowResponse represents the borrowing headroom of a credit line.
type MaxBorrowResponse struct {
	CreditLineID     string `json:"credit_line_id"`
	MaxAllowedBorrow Amount `json:"max_allowed_borrow"`
}

// VerifyResponse is returned when an admission check passes.
type VerifyResponse struct {
	CreditLineID string `json:"credit_line_id"`
	Mode         string `json:"mode"`
	Allowed      bool   `json:"allowed"`
}

// ProjectionResponse represents the projection of a credit line before opening.
type ProjectionResponse struct {
	SupplyUSD            Amount `json:"supply_usd"`
	BorrowUSD            Amount `json:"borrow_usd"`
	CollateralAmountUSD  Amount `json:"collateral_amount_usd"`
	CollateralLimitPrice Amount `json:"collateral_limit_price"`
	SupplyProcFeeUSD     Amount `json:"supply_processing_fee_usd"`
	BorrowProcFeeUSD     Amount `json:"borrow_processing_fee_usd"`
	TotalProcFeeUSD      Amount `json:"total_processing_fee_usd"`
}

// ProjectionFromDomain converts a projection to response.
func ProjectionFromDomain(p *domain.OpenCreditLineProjection) *ProjectionResponse {
	return &ProjectionResponse{
		SupplyUSD:            Fiat(p.SupplyUSD),
		BorrowUSD:            Fiat(p.BorrowUSD),
		CollateralAmountUSD:  Fiat(p.CollateralAmountUSD),
		CollateralLimitPrice: Fiat(p.CollateralLimitPrice),
		SupplyProcFeeUSD:     Fiat(p.SupplyProcFeeUSD),
		BorrowProcFeeUSD:     Fiat(p.BorrowProcFeeUSD),
		TotalProcFeeUSD:      Fiat(p.TotalProcFeeUSD),
	}
}

// EconomicalParametersResponse represents the rates of a currency pair.
type EconomicalParametersResponse struct {
	CreatedAt            time.Time `json:"created_at"`
	ID                   string    `json:"id"`
	CollateralCurrencyID string    `json:"collateral_currency_id"`
	DebtCurrencyID       string    `json:"debt_currency_id"`
	APRPercent           string    `json:"apr_percent"`
	APR                  Amount    `json:"apr"`
	LiquidationFee       Amount    `json:"liquidation_fee"`
	CollateralFactor     Amount    `json:"collateral_factor"`
	LiquidationFactor    Amount    `json:"liquidation_factor"`
	FiatProcessingFee    Amount    `json:"fiat_processing_fee"`
	CryptoProcessingFee  Amount    `json:"crypto_processing_fee"`
}

// EconomicalParametersFromDomain converts parameters to response.
func EconomicalParametersFromDomain(p *domain.EconomicalParameters) *EconomicalParametersResponse {
	return &EconomicalParametersResponse{
		CreatedAt:            p.CreatedAt,
		ID:                   p.ID,
		CollateralCurrencyID: p.CollateralCurrencyID,
		DebtCurrencyID:       p.DebtCurrencyID,
		APRPercent:           Percent(p.APR),
		APR:                  Fiat(p.APR),
		LiquidationFee:       Fiat(p.LiquidationFee),
		CollateralFactor:     Fiat(p.CollateralFactor),
		LiquidationFactor:    Fiat(p.LiquidationFactor),
		FiatProcessingFee:    Fiat(p.FiatProcessingFee),
		CryptoProcessingFee:  Fiat(p.CryptoProcessingFee),
	}
}

// AccrualResponse represents the outcome of an accrual.
type AccrualResponse struct {
	PreviousAccruedAt time.Time `json:"previous_accrued_at"`
	AccruedAt         time.Time `json:"accrued_at"`
	CreditLineID      string    `json:"credit_line_id"`
	Interest          Amount    `json:"interest"`
	DebtAmount        Amount    `json:"debt_amount"`
	Hours             uint64    `json:"hours"`
	Accrued           bool      `json:"accrued"`
}

// AccrualFromDomain converts an accrual result to response.
func AccrualFromDomain(r *domain.AccrualResult) *AccrualResponse {
	return &AccrualResponse{
		PreviousAccruedAt: r.PreviousAccruedAt,
		AccruedAt:         r.NewAccruedAt,
		CreditLineID:      r.CreditLineID,
		Interest:          Fiat(r.Interest),
		DebtAmount:        Fiat(r.NewDebtAmount),
		Hours:             r.Hours,
		Accrued:           r.Accrued,
	}
}

// DebtAccrualResponse represents one row of the accrual ledger.
type DebtAccrualResponse struct {
	AccruedAt      time.Time `json:"accrued_at"`
	CreatedAt      time.Time `json:"created_at"`
	ID             string    `json:"id"`
	CreditLineID   string    `json:"credit_line_id"`
	InterestAmount Amount    `json:"interest_amount"`
	DebtBefore     Amount    `json:"debt_before"`
	DebtAfter      Amount    `json:"debt_after"`
	Hours          uint64    `json:"hours"`
}

// ListDebtAccrualsResponse represents a page of the accrual ledger.
type ListDebtAccrualsResponse struct {
	Accruals []*DebtAccrualResponse `json:"accruals"`
	Total    int64                  `json:"total"`
}

// DebtAccrualsFromDomain converts accrual rows to response.
func DebtAccrualsFromDomain(accruals []*domain.DebtAccrual) ListDebtAccrualsResponse {
	result := make([]*DebtAccrualResponse, len(accruals))
	for i, a := range accruals {
		result[i] = &DebtAccrualResponse{
			AccruedAt:      a.AccruedAt,
			CreatedAt:      a.CreatedAt,
			ID:             a.ID,
			CreditLineID:   a.CreditLineID,
			InterestAmount: Fiat(a.InterestAmount),
			DebtBefore:     Fiat(a.DebtBefore),
			DebtAfter:      Fiat(a.DebtAfter),
			Hours:          a.Hours,
		}
	}
	return ListDebtAccrualsResponse{Accruals: result, Total: int64(len(result))}
}

// MovementResponse represents a credit line after a movement.
type MovementResponse struct {
	Accrual             *AccrualResponse `json:"accrual,omitempty"`
	CreditLineID        string           `json:"credit_line_id"`
	RawCollateralAmount Amount           `json:"raw_collateral_amount"`
	DebtAmount          Amount           `json:"debt_amount"`
}

// MovementFromUseCase converts a movement result to response.
func MovementFromUseCase(m *usecase.MovementResult) *MovementResponse {
	resp := &MovementResponse{
		CreditLineID:        m.CreditLineID,
		RawCollateralAmount: NewAmount(m.RawCollateralAmount, m.CollateralDecimals),
		DebtAmount:          Fiat(m.DebtAmount),
	}
	if m.Accrual.Accrued {
		resp.Accrual = AccrualFromDomain(&m.Accrual)
	}
	return resp
}

// SweepFailureResponse represents a line that failed during a sweep.
type SweepFailureResponse struct {
	CreditLineID string `json:"credit_line_id"`
	Error        string `json:"error"`
}

// SweepResponse summarizes an accrual sweep.
type SweepResponse struct {
	StartedAt     time.Time              `json:"started_at"`
	FinishedAt    time.Time              `json:"finished_at"`
	RunID         string                 `json:"run_id"`
	TotalInterest Amount                 `json:"total_interest"`
	Failures      []SweepFailureResponse `json:"failures,omitempty"`
	Processed     int                    `json:"processed"`
	Accrued       int                    `json:"accrued"`
	Skipped       int                    `json:"skipped"`
	Failed        int                    `json:"failed"`
}

// SweepFromUseCase converts a sweep report to response.
func SweepFromUseCase(r *usecase.SweepReport) *SweepResponse {
	resp := &SweepResponse{
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
		RunID:         r.RunID,
		TotalInterest: Fiat(r.TotalInterest),
		Processed:     r.Processed,
		Accrued:       r.Accrued,
		Skipped:       r.Skipped,
		Failed:        r.Failed,
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, SweepFailureResponse{CreditLineID: f.CreditLineID, Error: f.Error})
	}
	return resp
}
