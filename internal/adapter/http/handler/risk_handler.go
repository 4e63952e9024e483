package handler

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gocredit/internal/adapter/http/dto"
	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/usecase"
)

// RiskService defines the behavior needed by RiskHandler.
type RiskService interface {
	GetRiskOverview(ctx context.Context, creditLineID string, price *big.Int) (*usecase.RiskOverview, error)
	GetMaxAllowedBorrowAmount(ctx context.Context, creditLineID string, price *big.Int) (*big.Int, error)
	VerifyBorrow(ctx context.Context, input usecase.VerifyBorrowInput) error
	VerifyWithdraw(ctx context.Context, input usecase.VerifyWithdrawInput) error
	ProjectOpenCreditLine(ctx context.Context, input usecase.ProjectOpenCreditLineInput) (*domain.OpenCreditLineProjection, error)
	GetEconomicalParameters(ctx context.Context, creditLineID string) (*domain.EconomicalParameters, error)
}

// RiskHandler serves the read-only risk endpoints.
type RiskHandler struct {
	riskUC RiskService
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(riskUC RiskService) *RiskHandler {
	return &RiskHandler{riskUC: riskUC}
}

// Overview returns the risk picture of a credit line.
func (h *RiskHandler) Overview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing credit line ID", "")
		return
	}

	price, err := dto.ParseOptionalPrice(priceQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid price", err.Error())
		return
	}

	overview, err := h.riskUC.GetRiskOverview(r.Context(), id, price)
	if err != nil {
		writeDomainError(w, "failed to get risk overview", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RiskOverviewFromUseCase(overview))
}

// MaxBorrow returns how much more can be borrowed against a credit line.
func (h *RiskHandler) MaxBorrow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing credit line ID", "")
		return
	}

	price, err := dto.ParseOptionalPrice(priceQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid price", err.Error())
		return
	}

	amount, err := h.riskUC.GetMaxAllowedBorrowAmount(r.Context(), id, price)
	if err != nil {
		writeDomainError(w, "failed to get max borrow amount", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MaxBorrowResponse{
		CreditLineID:     id,
		MaxAllowedBorrow: dto.Fiat(amount),
	})
}

// VerifyBorrow answers 200 when the borrow would be admitted and 422 when not.
func (h *RiskHandler) VerifyBorrow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.VerifyBorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.riskUC.VerifyBorrow(r.Context(), input); err != nil {
		writeDomainError(w, "borrow rejected", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VerifyResponse{CreditLineID: id, Mode: input.Mode.String(), Allowed: true})
}

// VerifyWithdraw answers 200 when the withdraw would be admitted and 422 when not.
func (h *RiskHandler) VerifyWithdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.VerifyWithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.riskUC.VerifyWithdraw(r.Context(), input); err != nil {
		writeDomainError(w, "withdraw rejected", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VerifyResponse{CreditLineID: id, Mode: input.Mode.String(), Allowed: true})
}

// Project projects a credit line that has not been opened yet.
func (h *RiskHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectOpenCreditLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	projection, err := h.riskUC.ProjectOpenCreditLine(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to project credit line", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectionFromDomain(projection))
}

// Parameters returns the economical parameters a credit line is bound to.
func (h *RiskHandler) Parameters(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing credit line ID", "")
		return
	}

	params, err := h.riskUC.GetEconomicalParameters(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get economical parameters", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EconomicalParametersFromDomain(params))
}
