package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/risk"
	"github.com/iho/gocredit/internal/usecase"
	"github.com/iho/gocredit/internal/usecase/mocks"
)

type accrualFixture struct {
	creditRepo  *mocks.MockCreditLineRepository
	accrualRepo *mocks.MockDebtAccrualRepository
	txManager   *mocks.StubTransactionManager
	retrier     *mocks.PassthroughRetrier
	uc          *usecase.AccrualUseCase
}

func newAccrualFixture(t *testing.T, batchSize int) *accrualFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &accrualFixture{
		creditRepo:  mocks.NewMockCreditLineRepository(ctrl),
		accrualRepo: mocks.NewMockDebtAccrualRepository(ctrl),
		txManager:   mocks.NewStubTransactionManager(),
		retrier:     &mocks.PassthroughRetrier{},
	}
	f.uc = usecase.NewAccrualUseCase(
		f.txManager,
		f.creditRepo,
		f.accrualRepo,
		mocks.NewSequentialIDGenerator(),
		f.retrier,
		zerolog.Nop(),
		batchSize,
	)
	return f
}

var sweepNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAccrualUseCase_AccrueCreditLine(t *testing.T) {
	f := newAccrualFixture(t, 10)
	accruedAt := sweepNow.Add(-24 * time.Hour)
	interest := risk.CalculateInterestAccrued(usd("1000"), usd("0.12"), 24)

	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "line-1").
		Return(newSnapshot("line-1", "1", "1000", accruedAt), nil)
	f.creditRepo.EXPECT().ApplyAccrual(gomock.Any(), gomock.Any(), "line-1", eqBig(interest), accruedAt, sweepNow).
		Return(nil)
	f.accrualRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, a *domain.DebtAccrual) error {
			if a.ID != "id-1" || a.CreditLineID != "line-1" || a.Hours != 24 {
				t.Fatalf("unexpected accrual row: %+v", a)
			}
			if a.DebtBefore.Cmp(usd("1000")) != 0 || a.InterestAmount.Cmp(interest) != 0 {
				t.Fatalf("unexpected accrual amounts: %+v", a)
			}
			if !a.AccruedAt.Equal(sweepNow) {
				t.Fatalf("expected accrued_at %s, got %s", sweepNow, a.AccruedAt)
			}
			return nil
		})

	result, err := f.uc.AccrueCreditLine(context.Background(), "line-1", sweepNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Accrued || result.Hours != 24 {
		t.Fatalf("expected 24 accrued hours, got %+v", result)
	}
	if f.retrier.Calls != 1 {
		t.Fatalf("expected the retrier to run once, got %d", f.retrier.Calls)
	}
	if txs := f.txManager.Transactions(); len(txs) != 1 || !txs[0].Committed {
		t.Fatalf("expected one committed transaction")
	}
}

func TestAccrualUseCase_AccrueCreditLineWithinHour(t *testing.T) {
	f := newAccrualFixture(t, 10)

	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "line-1").
		Return(newSnapshot("line-1", "1", "1000", sweepNow.Add(-30*time.Minute)), nil)

	result, err := f.uc.AccrueCreditLine(context.Background(), "line-1", sweepNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Accrued {
		t.Fatalf("expected no accrual within the hour")
	}
	if result.NewDebtAmount.Cmp(usd("1000")) != 0 {
		t.Fatalf("expected unchanged debt, got %s", result.NewDebtAmount)
	}
}

func TestAccrualUseCase_AccrueCreditLineWithoutDebtMovesClock(t *testing.T) {
	f := newAccrualFixture(t, 10)

	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "line-1").
		Return(newSnapshot("line-1", "1", "0", sweepNow.Add(-5*time.Hour)), nil)
	f.creditRepo.EXPECT().SetAccruedAt(gomock.Any(), gomock.Any(), "line-1", sweepNow).Return(nil)

	result, err := f.uc.AccrueCreditLine(context.Background(), "line-1", sweepNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Accrued || result.Interest.Sign() != 0 {
		t.Fatalf("expected a zero-interest accrual, got %+v", result)
	}
}

func TestAccrualUseCase_AccrueCreditLineConflict(t *testing.T) {
	f := newAccrualFixture(t, 10)
	accruedAt := sweepNow.Add(-2 * time.Hour)

	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "line-1").
		Return(newSnapshot("line-1", "1", "1000", accruedAt), nil)
	f.creditRepo.EXPECT().ApplyAccrual(gomock.Any(), gomock.Any(), "line-1", gomock.Any(), accruedAt, sweepNow).
		Return(domain.ErrAccrualConflict)

	_, err := f.uc.AccrueCreditLine(context.Background(), "line-1", sweepNow)
	if !errors.Is(err, domain.ErrAccrualConflict) {
		t.Fatalf("expected ErrAccrualConflict, got %v", err)
	}
	if txs := f.txManager.Transactions(); len(txs) != 1 || txs[0].Committed {
		t.Fatalf("expected the transaction to be rolled back")
	}
}

func TestAccrualUseCase_AccrueClosedLine(t *testing.T) {
	f := newAccrualFixture(t, 10)
	snapshot := newSnapshot("line-1", "0", "0", sweepNow.Add(-48*time.Hour))
	snapshot.IsClosed = true

	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "line-1").Return(snapshot, nil)

	_, err := f.uc.AccrueCreditLine(context.Background(), "line-1", sweepNow)
	if !errors.Is(err, domain.ErrCreditLineClosed) {
		t.Fatalf("expected ErrCreditLineClosed, got %v", err)
	}
}

func TestAccrualUseCase_Sweep(t *testing.T) {
	f := newAccrualFixture(t, 2)
	dayAgo := sweepNow.Add(-24 * time.Hour)
	interest := risk.CalculateInterestAccrued(usd("1000"), usd("0.12"), 24)

	gomock.InOrder(
		f.creditRepo.EXPECT().ListAccruable(gomock.Any(), 2, "").Return([]string{"a", "b"}, nil),
		f.creditRepo.EXPECT().ListAccruable(gomock.Any(), 2, "b").Return([]string{"c", "d"}, nil),
		f.creditRepo.EXPECT().ListAccruable(gomock.Any(), 2, "d").Return([]string{"e"}, nil),
	)

	// a accrues.
	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "a").
		Return(newSnapshot("a", "1", "1000", dayAgo), nil)
	f.creditRepo.EXPECT().ApplyAccrual(gomock.Any(), gomock.Any(), "a", eqBig(interest), dayAgo, sweepNow).Return(nil)
	f.accrualRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// b fails to load.
	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "b").
		Return(nil, errors.New("connection reset"))

	// c was accrued by someone else in the meantime.
	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "c").
		Return(newSnapshot("c", "1", "1000", dayAgo), nil)
	f.creditRepo.EXPECT().ApplyAccrual(gomock.Any(), gomock.Any(), "c", gomock.Any(), dayAgo, sweepNow).
		Return(domain.ErrAccrualConflict)

	// d got liquidated after being listed.
	liquidated := newSnapshot("d", "1", "1000", dayAgo)
	liquidated.IsLiquidated = true
	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "d").Return(liquidated, nil)

	// e was accrued minutes ago.
	f.creditRepo.EXPECT().GetSnapshotForUpdate(gomock.Any(), gomock.Any(), "e").
		Return(newSnapshot("e", "1", "1000", sweepNow.Add(-10*time.Minute)), nil)

	report, err := f.uc.Sweep(context.Background(), sweepNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.RunID != "id-1" {
		t.Fatalf("expected run id id-1, got %s", report.RunID)
	}
	if report.Processed != 5 || report.Accrued != 1 || report.Skipped != 3 || report.Failed != 1 {
		t.Fatalf("unexpected counters: processed=%d accrued=%d skipped=%d failed=%d",
			report.Processed, report.Accrued, report.Skipped, report.Failed)
	}
	if len(report.Failures) != 1 || report.Failures[0].CreditLineID != "b" {
		t.Fatalf("expected one failure for b, got %+v", report.Failures)
	}
	if report.TotalInterest.Cmp(interest) != 0 {
		t.Fatalf("expected total interest %s, got %s", interest, report.TotalInterest)
	}
	if report.FinishedAt.Before(report.StartedAt) {
		t.Fatalf("finished before it started")
	}
}

func TestAccrualUseCase_SweepListError(t *testing.T) {
	f := newAccrualFixture(t, 10)
	f.creditRepo.EXPECT().ListAccruable(gomock.Any(), 10, "").Return(nil, errors.New("db down"))

	report, err := f.uc.Sweep(context.Background(), sweepNow)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if report == nil || report.Processed != 0 {
		t.Fatalf("expected an empty partial report, got %+v", report)
	}
}

func TestAccrualUseCase_SweepStopsOnCancel(t *testing.T) {
	f := newAccrualFixture(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.creditRepo.EXPECT().ListAccruable(gomock.Any(), 10, "").Return([]string{"a", "b"}, nil)

	report, err := f.uc.Sweep(ctx, sweepNow)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if report.Processed != 0 {
		t.Fatalf("expected nothing processed, got %d", report.Processed)
	}
}

func TestAccrualUseCase_DefaultBatchSize(t *testing.T) {
	f := newAccrualFixture(t, 0)
	f.creditRepo.EXPECT().ListAccruable(gomock.Any(), usecase.DefaultSweepBatchSize, "").Return(nil, nil)

	report, err := f.uc.Sweep(context.Background(), sweepNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Processed != 0 {
		t.Fatalf("expected nothing processed, got %d", report.Processed)
	}
}

func TestAccrualUseCase_ListAccruals(t *testing.T) {
	f := newAccrualFixture(t, 10)
	f.accrualRepo.EXPECT().ListByCreditLine(gomock.Any(), "line-1", 50, 0).Return([]*domain.DebtAccrual{
		{ID: "acc-2", CreditLineID: "line-1"},
		{ID: "acc-1", CreditLineID: "line-1"},
	}, nil)

	accruals, err := f.uc.ListAccruals(context.Background(), "line-1", 0, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accruals) != 2 {
		t.Fatalf("expected 2 accruals, got %d", len(accruals))
	}
}
