package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/usecase"
)

// Metrics holds the Prometheus metrics of the accrual engine.
type Metrics struct {
	// Sweep metrics
	SweepsTotal         *prometheus.CounterVec
	SweepDuration       prometheus.Histogram
	SweepLastSuccess    prometheus.Gauge
	CreditLinesAccrued  prometheus.Counter
	CreditLinesSkipped  prometheus.Counter
	CreditLinesFailed   prometheus.Counter
	InterestAccruedFiat prometheus.Counter
}

// New creates and registers all metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SweepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocredit_accrual_sweeps_total",
				Help: "Total accrual sweeps by outcome",
			},
			[]string{"status"},
		),
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gocredit_accrual_sweep_duration_seconds",
			Help:    "Duration of accrual sweeps",
			Buckets: prometheus.DefBuckets,
		}),
		SweepLastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gocredit_accrual_sweep_last_success_timestamp_seconds",
			Help: "Unix time of the last sweep that finished without error",
		}),
		CreditLinesAccrued: factory.NewCounter(prometheus.CounterOpts{
			Name: "gocredit_credit_lines_accrued_total",
			Help: "Total credit lines that accrued interest during sweeps",
		}),
		CreditLinesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "gocredit_credit_lines_skipped_total",
			Help: "Total credit lines skipped during sweeps",
		}),
		CreditLinesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "gocredit_credit_lines_failed_total",
			Help: "Total credit lines that failed to accrue during sweeps",
		}),
		InterestAccruedFiat: factory.NewCounter(prometheus.CounterOpts{
			Name: "gocredit_interest_accrued_fiat_total",
			Help: "Total interest accrued by sweeps, in fiat units",
		}),
	}
}

// ObserveSweep records a sweep report. A nil report only counts the failure.
func (m *Metrics) ObserveSweep(report *usecase.SweepReport, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.SweepsTotal.WithLabelValues(status).Inc()

	if report == nil {
		return
	}

	m.SweepDuration.Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())
	m.CreditLinesAccrued.Add(float64(report.Accrued))
	m.CreditLinesSkipped.Add(float64(report.Skipped))
	m.CreditLinesFailed.Add(float64(report.Failed))

	// Counters are float64; the exact amount lives in the accrual ledger.
	if interest, ok := fixedpoint.ToFloat(report.TotalInterest, fixedpoint.Decimals); ok && interest > 0 {
		m.InterestAccruedFiat.Add(interest)
	}

	if err == nil {
		m.SweepLastSuccess.Set(float64(report.FinishedAt.Unix()))
	}
}
