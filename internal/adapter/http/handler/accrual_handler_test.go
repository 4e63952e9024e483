package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iho/gocredit/internal/adapter/http/dto"
	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/usecase"
)

type accrualServiceStub struct {
	accrueFn func(ctx context.Context, id string, now time.Time) (*domain.AccrualResult, error)
	listFn   func(ctx context.Context, id string, limit, offset int) ([]*domain.DebtAccrual, error)
	sweepFn  func(ctx context.Context, now time.Time) (*usecase.SweepReport, error)
}

func (s *accrualServiceStub) AccrueCreditLine(ctx context.Context, id string, now time.Time) (*domain.AccrualResult, error) {
	return s.accrueFn(ctx, id, now)
}

func (s *accrualServiceStub) ListAccruals(ctx context.Context, id string, limit, offset int) ([]*domain.DebtAccrual, error) {
	return s.listFn(ctx, id, limit, offset)
}

func (s *accrualServiceStub) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	return s.sweepFn(ctx, now)
}

func newTestAccrualHandler(stub *accrualServiceStub, now time.Time) *AccrualHandler {
	h := NewAccrualHandler(stub)
	h.now = func() time.Time { return now }
	return h
}

func TestAccrualHandler_Accrue(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	tests := []struct {
		name     string
		body     string
		wantTime time.Time
	}{
		{name: "empty body accrues to now", body: "", wantTime: now},
		{name: "explicit time", body: `{"at":"` + past.Format(time.RFC3339) + `"}`, wantTime: past},
		{name: "future time is clamped", body: `{"at":"` + now.Add(time.Hour).Format(time.RFC3339) + `"}`, wantTime: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTime time.Time
			h := newTestAccrualHandler(&accrualServiceStub{
				accrueFn: func(ctx context.Context, id string, at time.Time) (*domain.AccrualResult, error) {
					gotTime = at
					return &domain.AccrualResult{
						CreditLineID:  id,
						Accrued:       true,
						Hours:         3,
						Interest:      big.NewInt(42),
						NewDebtAmount: big.NewInt(1042),
						NewAccruedAt:  at,
					}, nil
				},
			}, now)

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/credit-lines/line-1/accrue", strings.NewReader(tt.body)), "id", "line-1")
			rec := httptest.NewRecorder()
			h.Accrue(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if !gotTime.Equal(tt.wantTime) {
				t.Fatalf("expected accrual at %s, got %s", tt.wantTime, gotTime)
			}

			var resp dto.AccrualResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Hours != 3 || resp.Interest.Raw != "42" {
				t.Fatalf("unexpected response %+v", resp)
			}
		})
	}
}

func TestAccrualHandler_Accrue_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed body", body: `{"at":`, wantStatus: http.StatusBadRequest},
		{name: "not found", serviceErr: domain.ErrCreditLineNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", serviceErr: domain.ErrAccrualConflict, wantStatus: http.StatusConflict},
		{name: "closed", serviceErr: domain.ErrCreditLineClosed, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAccrualHandler(&accrualServiceStub{
				accrueFn: func(ctx context.Context, id string, at time.Time) (*domain.AccrualResult, error) {
					return nil, tt.serviceErr
				},
			}, time.Now())

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/credit-lines/line-1/accrue", strings.NewReader(tt.body)), "id", "line-1")
			rec := httptest.NewRecorder()
			h.Accrue(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestAccrualHandler_List(t *testing.T) {
	var gotLimit, gotOffset int
	h := NewAccrualHandler(&accrualServiceStub{
		listFn: func(ctx context.Context, id string, limit, offset int) ([]*domain.DebtAccrual, error) {
			gotLimit, gotOffset = limit, offset
			return []*domain.DebtAccrual{
				{ID: "a-2", CreditLineID: id, Hours: 1, InterestAmount: big.NewInt(5), DebtBefore: big.NewInt(10), DebtAfter: big.NewInt(15)},
				{ID: "a-1", CreditLineID: id, Hours: 2, InterestAmount: big.NewInt(10), DebtBefore: big.NewInt(0), DebtAfter: big.NewInt(10)},
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/credit-lines/line-1/accruals?limit=5&offset=10", nil), "id", "line-1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 5 || gotOffset != 10 {
		t.Fatalf("expected limit=5 offset=10, got %d/%d", gotLimit, gotOffset)
	}

	var resp dto.ListDebtAccrualsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || resp.Accruals[0].ID != "a-2" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAccrualHandler_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	report := &usecase.SweepReport{RunID: "run-1", TotalInterest: big.NewInt(7), Processed: 2, Accrued: 1, Skipped: 1}

	h := newTestAccrualHandler(&accrualServiceStub{
		sweepFn: func(ctx context.Context, at time.Time) (*usecase.SweepReport, error) {
			if !at.Equal(now) {
				t.Fatalf("expected sweep at %s, got %s", now, at)
			}
			return report, nil
		},
	}, now)

	rec := httptest.NewRecorder()
	h.Sweep(rec, httptest.NewRequest(http.MethodPost, "/accrual/sweep", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SweepResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RunID != "run-1" || resp.Processed != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAccrualHandler_Sweep_PartialReport(t *testing.T) {
	h := NewAccrualHandler(&accrualServiceStub{
		sweepFn: func(ctx context.Context, at time.Time) (*usecase.SweepReport, error) {
			return &usecase.SweepReport{RunID: "run-2", TotalInterest: new(big.Int), Processed: 1}, errors.New("list failed")
		},
	})

	rec := httptest.NewRecorder()
	h.Sweep(rec, httptest.NewRequest(http.MethodPost, "/accrual/sweep", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.SweepResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RunID != "run-2" {
		t.Fatalf("expected partial report, got %+v", resp)
	}
}
