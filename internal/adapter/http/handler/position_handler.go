package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gocredit/internal/adapter/http/dto"
	"github.com/iho/gocredit/internal/usecase"
)

// PositionService defines the behavior needed by PositionHandler.
type PositionService interface {
	Deposit(ctx context.Context, input usecase.CollateralMovementInput) (*usecase.MovementResult, error)
	Withdraw(ctx context.Context, input usecase.CollateralMovementInput) (*usecase.MovementResult, error)
	Borrow(ctx context.Context, input usecase.DebtMovementInput) (*usecase.MovementResult, error)
	Repay(ctx context.Context, input usecase.DebtMovementInput) (*usecase.MovementResult, error)
}

// PositionHandler moves collateral and debt on credit lines.
type PositionHandler struct {
	positionUC PositionService
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionUC PositionService) *PositionHandler {
	return &PositionHandler{positionUC: positionUC}
}

type collateralMove func(ctx context.Context, input usecase.CollateralMovementInput) (*usecase.MovementResult, error)

type debtMove func(ctx context.Context, input usecase.DebtMovementInput) (*usecase.MovementResult, error)

// Deposit adds collateral.
func (h *PositionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.moveCollateral(w, r, "deposit", h.positionUC.Deposit)
}

// Withdraw removes collateral when the line stays solvent.
func (h *PositionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.moveCollateral(w, r, "withdraw", h.positionUC.Withdraw)
}

// Borrow increases debt when the line stays solvent.
func (h *PositionHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	h.moveDebt(w, r, "borrow", h.positionUC.Borrow)
}

// Repay decreases debt.
func (h *PositionHandler) Repay(w http.ResponseWriter, r *http.Request) {
	h.moveDebt(w, r, "repay", h.positionUC.Repay)
}

func (h *PositionHandler) moveCollateral(w http.ResponseWriter, r *http.Request, op string, fn collateralMove) {
	var req dto.CollateralMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := fn(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to "+op, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromUseCase(result))
}

func (h *PositionHandler) moveDebt(w http.ResponseWriter, r *http.Request, op string, fn debtMove) {
	var req dto.DebtMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := fn(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to "+op, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromUseCase(result))
}
