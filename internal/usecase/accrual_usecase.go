package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/risk"
)

// AccrualUseCase applies interest to credit lines.
type AccrualUseCase struct {
	txManager      TransactionManager
	creditLineRepo CreditLineRepository
	accrualRepo    DebtAccrualRepository
	idGen          IDGenerator
	retrier        Retrier
	logger         zerolog.Logger
	batchSize      int
}

// NewAccrualUseCase creates a new AccrualUseCase. A non-positive batchSize
// falls back to DefaultSweepBatchSize.
func NewAccrualUseCase(
	txManager TransactionManager,
	creditLineRepo CreditLineRepository,
	accrualRepo DebtAccrualRepository,
	idGen IDGenerator,
	retrier Retrier,
	logger zerolog.Logger,
	batchSize int,
) *AccrualUseCase {
	if batchSize <= 0 {
		batchSize = DefaultSweepBatchSize
	}
	return &AccrualUseCase{
		txManager:      txManager,
		creditLineRepo: creditLineRepo,
		accrualRepo:    accrualRepo,
		idGen:          idGen,
		retrier:        retrier,
		logger:         logger,
		batchSize:      batchSize,
	}
}

// AccrueCreditLine accrues the interest of one line up to now. A line that
// was accrued less than an hour ago is returned unchanged with Accrued unset.
func (uc *AccrualUseCase) AccrueCreditLine(ctx context.Context, creditLineID string, now time.Time) (*domain.AccrualResult, error) {
	var result domain.AccrualResult

	err := inTransaction(ctx, uc.txManager, uc.retrier, func(ctx context.Context, tx Transaction) error {
		snapshot, err := uc.creditLineRepo.GetSnapshotForUpdate(ctx, tx, creditLineID)
		if err != nil {
			return err
		}
		if err := snapshot.CheckMutable(); err != nil {
			return err
		}

		result, err = applyAccrual(ctx, tx, uc.creditLineRepo, uc.accrualRepo, uc.idGen, snapshot, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// applyAccrual persists the interest of snapshot up to now inside tx and
// updates the snapshot in memory.
func applyAccrual(
	ctx context.Context,
	tx Transaction,
	creditLineRepo CreditLineRepository,
	accrualRepo DebtAccrualRepository,
	idGen IDGenerator,
	snapshot *domain.CreditLineSnapshot,
	now time.Time,
) (domain.AccrualResult, error) {
	result := risk.AccrueInterest(snapshot, now)
	if !result.Accrued {
		return result, nil
	}

	// Nothing owed: move the clock without writing a ledger row.
	if result.Interest.Sign() == 0 {
		if err := creditLineRepo.SetAccruedAt(ctx, tx, snapshot.ID, result.NewAccruedAt); err != nil {
			return result, err
		}
		snapshot.AccruedAt = result.NewAccruedAt
		return result, nil
	}

	if err := creditLineRepo.ApplyAccrual(ctx, tx, snapshot.ID, result.Interest, result.PreviousAccruedAt, result.NewAccruedAt); err != nil {
		return result, err
	}

	accrual := &domain.DebtAccrual{
		ID:             idGen.Generate(),
		CreditLineID:   snapshot.ID,
		Hours:          result.Hours,
		InterestAmount: result.Interest,
		DebtBefore:     result.PreviousDebt,
		DebtAfter:      result.NewDebtAmount,
		AccruedAt:      result.NewAccruedAt,
		CreatedAt:      now,
	}
	if err := accrualRepo.Create(ctx, tx, accrual); err != nil {
		return result, err
	}

	snapshot.DebtAmount = new(big.Int).Set(result.NewDebtAmount)
	snapshot.AccruedAt = result.NewAccruedAt
	return result, nil
}

// SweepFailure records a line whose accrual failed during a sweep.
type SweepFailure struct {
	CreditLineID string
	Error        string
}

// SweepReport summarizes one accrual sweep.
type SweepReport struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	TotalInterest *big.Int
	RunID         string
	Failures      []SweepFailure
	Processed     int
	Accrued       int
	Skipped       int
	Failed        int
}

// Sweep accrues every open credit line page by page. A failing line is
// logged and counted and never stops the sweep; only a failure to list lines
// or a cancelled context ends it early, returning the partial report.
func (uc *AccrualUseCase) Sweep(ctx context.Context, now time.Time) (*SweepReport, error) {
	report := &SweepReport{
		RunID:         uc.idGen.Generate(),
		StartedAt:     time.Now().UTC(),
		TotalInterest: new(big.Int),
	}
	logger := uc.logger.With().Str("run_id", report.RunID).Logger()

	logger.Info().
		Time("accrue_until", now).
		Int("batch_size", uc.batchSize).
		Msg("accrual sweep started")

	afterID := ""
	for {
		ids, err := uc.creditLineRepo.ListAccruable(ctx, uc.batchSize, afterID)
		if err != nil {
			report.FinishedAt = time.Now().UTC()
			return report, fmt.Errorf("list accruable credit lines after %q: %w", afterID, err)
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				report.FinishedAt = time.Now().UTC()
				return report, err
			}
			uc.sweepOne(ctx, logger, report, id, now)
		}

		if len(ids) < uc.batchSize {
			break
		}
		afterID = ids[len(ids)-1]
	}

	report.FinishedAt = time.Now().UTC()

	logger.Info().
		Int("processed", report.Processed).
		Int("accrued", report.Accrued).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Str("total_interest", fixedpoint.FormatUnits(report.TotalInterest, fixedpoint.Decimals)).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("accrual sweep finished")

	return report, nil
}

func (uc *AccrualUseCase) sweepOne(ctx context.Context, logger zerolog.Logger, report *SweepReport, id string, now time.Time) {
	report.Processed++

	result, err := uc.AccrueCreditLine(ctx, id, now)
	switch {
	case errors.Is(err, domain.ErrAccrualConflict),
		errors.Is(err, domain.ErrCreditLineLiquidated),
		errors.Is(err, domain.ErrCreditLineClosed):
		report.Skipped++
		logger.Debug().Err(err).Str("credit_line_id", id).Msg("credit line skipped")
	case err != nil:
		report.Failed++
		if len(report.Failures) < MaxSweepFailures {
			report.Failures = append(report.Failures, SweepFailure{CreditLineID: id, Error: err.Error()})
		}
		logger.Error().Err(err).Str("credit_line_id", id).Msg("failed to accrue credit line")
	case !result.Accrued:
		report.Skipped++
	default:
		report.Accrued++
		report.TotalInterest.Add(report.TotalInterest, result.Interest)
		logger.Debug().
			Str("credit_line_id", id).
			Uint64("hours", result.Hours).
			Str("interest", fixedpoint.FormatUnits(result.Interest, fixedpoint.Decimals)).
			Msg("credit line accrued")
	}
}

// ListAccruals returns the accrual history of a credit line, newest first.
func (uc *AccrualUseCase) ListAccruals(ctx context.Context, creditLineID string, limit, offset int) ([]*domain.DebtAccrual, error) {
	limit, offset, err := domain.ValidatePagination(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.accrualRepo.ListByCreditLine(ctx, creditLineID, limit, offset)
}
