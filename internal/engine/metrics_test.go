package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valvelet/internal/model"
)

func TestNormalizeIncomeRates(t *testing.T) {
	from := date(2026, 1, 1)
	cases := []struct {
		name  string
		freq  model.Frequency
		daily string
	}{
		{"monthly over 30", model.FreqMonthly, "2833.3333333333333333"},
		{"weekly over 7", model.FreqWeekly, "12142.857142857142857142857142857143"},
		{"daily as-is", model.FreqDaily, "85000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := model.IncomeEntry{Source: "s", Amount: dec("85000"), Frequency: tc.freq, From: from}
			r := NormalizeIncome(e)
			assert.InDelta(t, mustFloat(tc.daily), r.Daily.InexactFloat64(), 0.0001)
			assert.True(t, r.Active.Contains(from))
			assert.True(t, r.Active.Contains(from.AddDate(10, 0, 0)), "open-ended entries never expire")
		})
	}
}

func mustFloat(s string) float64 {
	return dec(s).InexactFloat64()
}

func TestNormalizeOnceIsSingleDay(t *testing.T) {
	from := date(2026, 3, 1)
	r := NormalizeIncome(model.IncomeEntry{Source: "s", Amount: dec("5000"), Frequency: model.FreqOnce, From: from})

	assert.True(t, r.Daily.Equal(dec("5000")))
	assert.True(t, r.Active.Contains(from))
	assert.False(t, r.Active.Contains(from.AddDate(0, 0, 1)))
	assert.False(t, r.Active.Contains(from.AddDate(0, 0, -1)))
}

func TestActivityDailyCost(t *testing.T) {
	a := model.Activity{Name: "Gym", Cost: dec("1000"), DaysPerWeek: dec("3")}
	got := ActivityDailyCost(a)
	assert.InDelta(t, 428.5714285714, got.InexactFloat64(), 0.0001)

	zero := model.Activity{Name: "Paused", Cost: dec("1000"), DaysPerWeek: dec("0")}
	assert.True(t, ActivityDailyCost(zero).IsZero())
}

func TestMetricsWorkedExample(t *testing.T) {
	// balance 500000 as of 2026-02-19, 200000/month income from 2026-01-01,
	// rent 85000/month, one 1000-cost activity three days a week.
	asOf := date(2026, 2, 19)
	incomes := []model.IncomeEntry{
		{Source: "Salary", Amount: dec("200000"), Frequency: model.FreqMonthly, From: date(2026, 1, 1)},
	}
	fixed := []model.FixedCost{{Name: "Rent", Amount: dec("85000")}}
	scn := model.Scenario{Name: "Minimal", Activities: []model.Activity{
		{Name: "Gym", Cost: dec("1000"), DaysPerWeek: dec("3")},
	}}

	m := Metrics(scn, incomes, fixed, asOf)

	assert.InDelta(t, 3261.90, m.DailyBurn.InexactFloat64(), 0.01)
	assert.InDelta(t, 6666.67, m.DailyIncome.InexactFloat64(), 0.01)
	assert.InDelta(t, 3404.76, m.NetDaily.InexactFloat64(), 0.01)

	// Monthly burn is derived from daily burn, not computed separately.
	assert.True(t, m.MonthlyBurn.Equal(m.DailyBurn.Mul(dec("30"))))
}

func TestMetricsIgnoresInactiveStreams(t *testing.T) {
	asOf := date(2026, 2, 19)
	ended := date(2026, 1, 31)
	incomes := []model.IncomeEntry{
		{Source: "Old gig", Amount: dec("100000"), Frequency: model.FreqMonthly, From: date(2025, 1, 1), To: &ended},
		{Source: "Future gig", Amount: dec("100000"), Frequency: model.FreqMonthly, From: date(2026, 6, 1)},
		{Source: "Current", Amount: dec("30000"), Frequency: model.FreqMonthly, From: date(2026, 1, 1)},
	}

	m := Metrics(model.Scenario{Name: "Any"}, incomes, nil, asOf)
	assert.InDelta(t, 1000.0, m.DailyIncome.InexactFloat64(), 0.0001)
}

func TestRankOrdersByDeathDay(t *testing.T) {
	d1 := date(2026, 8, 1)
	d2 := date(2027, 1, 15)
	results := []model.DeathDayResult{
		{Scenario: "Lavish", DeathDay: &d2},
		{Scenario: "Survivor A", DeathDay: nil},
		{Scenario: "Doomed", DeathDay: &d1},
		{Scenario: "Survivor B", DeathDay: nil},
	}

	ranked := Rank(results)

	require.Len(t, ranked, 4)
	assert.Equal(t, "Doomed", ranked[0].Scenario)
	assert.Equal(t, "Lavish", ranked[1].Scenario)
	assert.Equal(t, "Survivor A", ranked[2].Scenario, "survivors keep input order")
	assert.Equal(t, "Survivor B", ranked[3].Scenario)

	// The input slice is untouched.
	assert.Equal(t, "Lavish", results[0].Scenario)
}

func TestRankIsStableOnTies(t *testing.T) {
	d := date(2026, 8, 1)
	results := []model.DeathDayResult{
		{Scenario: "First", DeathDay: &d},
		{Scenario: "Second", DeathDay: &d},
		{Scenario: "Third", DeathDay: &d},
	}

	ranked := Rank(results)
	for i, want := range []string{"First", "Second", "Third"} {
		assert.Equal(t, want, ranked[i].Scenario)
	}
}

func TestRankConcreteBeforeNil(t *testing.T) {
	d := date(2026, 8, 1)
	ranked := Rank([]model.DeathDayResult{
		{Scenario: "Survivor"},
		{Scenario: "Mortal", DeathDay: &d},
	})
	assert.Equal(t, "Mortal", ranked[0].Scenario)
	assert.Equal(t, "Survivor", ranked[1].Scenario)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
