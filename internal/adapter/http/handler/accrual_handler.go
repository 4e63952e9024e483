package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gocredit/internal/adapter/http/dto"
	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/usecase"
)

// AccrualService defines the behavior needed by AccrualHandler.
type AccrualService interface {
	AccrueCreditLine(ctx context.Context, creditLineID string, now time.Time) (*domain.AccrualResult, error)
	ListAccruals(ctx context.Context, creditLineID string, limit, offset int) ([]*domain.DebtAccrual, error)
	Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error)
}

// AccrualHandler serves interest accrual endpoints.
type AccrualHandler struct {
	accrualUC AccrualService
	now       func() time.Time
}

// NewAccrualHandler creates a new AccrualHandler.
func NewAccrualHandler(accrualUC AccrualService) *AccrualHandler {
	return &AccrualHandler{
		accrualUC: accrualUC,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Accrue accrues interest on one credit line. The body is optional.
func (h *AccrualHandler) Accrue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing credit line ID", "")
		return
	}

	var req dto.AccrueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.accrualUC.AccrueCreditLine(r.Context(), id, req.Time(h.now()))
	if err != nil {
		writeDomainError(w, "failed to accrue interest", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccrualFromDomain(result))
}

// List lists the accrual ledger of a credit line, newest first.
func (h *AccrualHandler) List(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing credit line ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	accruals, err := h.accrualUC.ListAccruals(r.Context(), id, limit, offset)
	if err != nil {
		writeDomainError(w, "failed to list accruals", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtAccrualsFromDomain(accruals))
}

// Sweep accrues every open credit line.
func (h *AccrualHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.accrualUC.Sweep(r.Context(), h.now())
	if err != nil {
		if report != nil {
			writeJSON(w, http.StatusInternalServerError, dto.SweepFromUseCase(report))
			return
		}
		writeError(w, http.StatusInternalServerError, "sweep failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SweepFromUseCase(report))
}
