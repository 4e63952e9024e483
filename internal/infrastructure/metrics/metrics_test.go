package metrics

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/usecase"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegisterer(registry)

	if m.SweepsTotal == nil || m.SweepDuration == nil || m.InterestAccruedFiat == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.SweepsTotal.WithLabelValues("success")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestObserveSweep(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m.ObserveSweep(&usecase.SweepReport{
		StartedAt:     started,
		FinishedAt:    started.Add(2 * time.Second),
		TotalInterest: fixedpoint.MustParseUnits("12.5", fixedpoint.Decimals),
		Processed:     4,
		Accrued:       2,
		Skipped:       1,
		Failed:        1,
	}, nil)

	if got := testutil.ToFloat64(m.SweepsTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected one successful sweep, got %v", got)
	}
	if got := testutil.ToFloat64(m.CreditLinesAccrued); got != 2 {
		t.Fatalf("expected 2 accrued lines, got %v", got)
	}
	if got := testutil.ToFloat64(m.InterestAccruedFiat); got != 12.5 {
		t.Fatalf("expected 12.5 interest, got %v", got)
	}
	if got := testutil.ToFloat64(m.SweepLastSuccess); got != float64(started.Add(2*time.Second).Unix()) {
		t.Fatalf("unexpected last success timestamp %v", got)
	}
}

func TestObserveSweepFailure(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.ObserveSweep(&usecase.SweepReport{TotalInterest: big.NewInt(0), Failed: 3}, errors.New("list failed"))
	m.ObserveSweep(nil, errors.New("boom"))

	if got := testutil.ToFloat64(m.SweepsTotal.WithLabelValues("error")); got != 2 {
		t.Fatalf("expected two failed sweeps, got %v", got)
	}
	if got := testutil.ToFloat64(m.CreditLinesFailed); got != 3 {
		t.Fatalf("expected 3 failed lines, got %v", got)
	}
	if got := testutil.ToFloat64(m.SweepLastSuccess); got != 0 {
		t.Fatalf("expected no success timestamp, got %v", got)
	}
}
