package risk

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursSinceAccrual(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want uint64
	}{
		{name: "same instant", now: base, want: 0},
		{name: "59 minutes", now: base.Add(59 * time.Minute), want: 0},
		{name: "exactly one hour", now: base.Add(time.Hour), want: 1},
		{name: "90 minutes floors", now: base.Add(90 * time.Minute), want: 1},
		{name: "one year", now: base.Add(HoursInYear * time.Hour), want: HoursInYear},
		{name: "clock went backwards", now: base.Add(-3 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoursSinceAccrual(tt.now, base))
		})
	}
}

func TestCalculateInterestAccruedOneYear(t *testing.T) {
	got := CalculateInterestAccrued(usd("1000"), usd("0.12"), HoursInYear)

	want := usd("120")
	diff := new(big.Int).Sub(want, got)
	require.GreaterOrEqual(t, diff.Sign(), 0, "interest %s overshoots %s", got, want)
	assert.LessOrEqual(t, diff.Int64(), int64(10), "interest %s too far from %s", got, want)
}

func TestCalculateInterestAccrued(t *testing.T) {
	tests := []struct {
		name  string
		debt  *big.Int
		apr   *big.Int
		hours uint64
		want  *big.Int
	}{
		{name: "zero hours", debt: usd("1000"), apr: usd("0.12"), hours: 0, want: big.NewInt(0)},
		{name: "zero debt", debt: big.NewInt(0), apr: usd("0.12"), hours: 24, want: big.NewInt(0)},
		{name: "negative debt", debt: usd("-10"), apr: usd("0.12"), hours: 24, want: big.NewInt(0)},
		{name: "nil debt", debt: nil, apr: usd("0.12"), hours: 24, want: big.NewInt(0)},
		{name: "zero apr", debt: usd("1000"), apr: big.NewInt(0), hours: 24, want: big.NewInt(0)},
		// 0.876 / 8760 is exactly 0.0001 per hour.
		{name: "exact hourly rate", debt: usd("1000"), apr: usd("0.876"), hours: 1, want: usd("0.1")},
		{name: "exact hourly rate over ten hours", debt: usd("1000"), apr: usd("0.876"), hours: 10, want: usd("1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateInterestAccrued(tt.debt, tt.apr, tt.hours)
			assert.Zero(t, tt.want.Cmp(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAccrueInterestWithinHourIsNoop(t *testing.T) {
	snapshot := btcSnapshot("1", "1000")
	now := snapshot.AccruedAt.Add(59*time.Minute + 59*time.Second)

	result := AccrueInterest(snapshot, now)

	assert.False(t, result.Accrued)
	assert.Zero(t, result.Hours)
	assert.Zero(t, result.Interest.Sign())
	assert.Zero(t, snapshot.DebtAmount.Cmp(result.NewDebtAmount))
	assert.True(t, result.NewAccruedAt.Equal(snapshot.AccruedAt))
}

func TestAccrueInterest(t *testing.T) {
	snapshot := btcSnapshot("1", "1000")
	now := snapshot.AccruedAt.Add(24*time.Hour + 30*time.Minute)

	result := AccrueInterest(snapshot, now)

	require.True(t, result.Accrued)
	assert.Equal(t, uint64(24), result.Hours)
	assert.Equal(t, "line-1", result.CreditLineID)
	assert.True(t, result.NewAccruedAt.Equal(now))
	assert.True(t, result.PreviousAccruedAt.Equal(snapshot.AccruedAt))
	assert.Positive(t, result.Interest.Sign())

	sum := new(big.Int).Add(result.PreviousDebt, result.Interest)
	assert.Zero(t, sum.Cmp(result.NewDebtAmount))
	assert.Zero(t, usd("1000").Cmp(snapshot.DebtAmount), "snapshot must not be mutated")
}

func TestAccrueInterestTwiceAtSameInstant(t *testing.T) {
	snapshot := btcSnapshot("1", "1000")
	now := snapshot.AccruedAt.Add(5 * time.Hour)

	first := AccrueInterest(snapshot, now)
	require.True(t, first.Accrued)

	snapshot.DebtAmount = first.NewDebtAmount
	snapshot.AccruedAt = first.NewAccruedAt

	second := AccrueInterest(snapshot, now)
	assert.False(t, second.Accrued)
	assert.Zero(t, first.NewDebtAmount.Cmp(second.NewDebtAmount))
}

func TestAccrueInterestNeverDecreasesDebt(t *testing.T) {
	snapshot := btcSnapshot("1", "1234.56789")
	start := snapshot.AccruedAt

	steps := []time.Duration{
		30 * time.Minute,
		90 * time.Minute,
		7 * time.Hour,
		7*time.Hour + 10*time.Minute,
		200 * time.Hour,
		HoursInYear * time.Hour,
	}

	debt := new(big.Int).Set(snapshot.DebtAmount)
	for _, step := range steps {
		result := AccrueInterest(snapshot, start.Add(step))
		require.GreaterOrEqual(t, result.NewDebtAmount.Cmp(debt), 0, "debt decreased at +%s", step)

		debt = result.NewDebtAmount
		snapshot.DebtAmount = result.NewDebtAmount
		snapshot.AccruedAt = result.NewAccruedAt
	}

	direct := AccrueInterest(btcSnapshot("1", "1234.56789"), start.Add(HoursInYear*time.Hour))
	assert.Positive(t, direct.NewDebtAmount.Cmp(usd("1234.56789")))
}
