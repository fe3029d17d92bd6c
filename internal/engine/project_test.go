package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valvelet/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func balance(amount string, asOf time.Time) model.BalanceSnapshot {
	return model.BalanceSnapshot{Amount: dec(amount), AsOf: asOf}
}

func TestProjectSeriesShape(t *testing.T) {
	asOf := date(2026, 2, 19)
	res, err := Project(balance("500000", asOf), nil, nil, model.Scenario{Name: "Idle"}, 90)
	require.NoError(t, err)

	require.Len(t, res.Points, 90)
	assert.Equal(t, asOf, res.Points[0].Date)
	for i := 1; i < len(res.Points); i++ {
		assert.True(t, res.Points[i].Date.After(res.Points[i-1].Date),
			"dates must be strictly increasing at index %d", i)
		assert.Equal(t, res.Points[i-1].Date.AddDate(0, 0, 1), res.Points[i].Date)
	}
}

func TestProjectConstantWhenNoFlows(t *testing.T) {
	res, err := Project(balance("12345.67", date(2026, 1, 1)), nil, nil, model.Scenario{Name: "Idle"}, 365)
	require.NoError(t, err)

	for _, p := range res.Points {
		assert.True(t, p.Balance.Equal(dec("12345.67")), "balance drifted at %s: %s", p.Date, p.Balance)
	}
	assert.Nil(t, res.Death.DeathDay)
}

func TestProjectAnchorPointBeforeAnyDelta(t *testing.T) {
	// Day 0 must carry the untouched snapshot even with a same-day payout.
	asOf := date(2026, 2, 19)
	incomes := []model.IncomeEntry{
		{Source: "Bonus", Amount: dec("1000"), Frequency: model.FreqOnce, From: asOf},
	}
	res, err := Project(balance("500", asOf), incomes, nil, model.Scenario{Name: "Idle"}, 3)
	require.NoError(t, err)

	assert.True(t, res.Points[0].Balance.Equal(dec("500")))
	assert.True(t, res.Points[1].Balance.Equal(dec("1500")), "once payout applies from the next point")
	assert.True(t, res.Points[2].Balance.Equal(dec("1500")), "once payout applies exactly one day")
}

func TestProjectOnceEntryIgnoresTo(t *testing.T) {
	asOf := date(2026, 1, 1)
	to := date(2026, 1, 20)
	incomes := []model.IncomeEntry{
		{Source: "Refund", Amount: dec("100"), Frequency: model.FreqOnce, From: asOf, To: &to},
	}
	res, err := Project(balance("0.01", asOf), incomes, nil, model.Scenario{Name: "Idle"}, 30)
	require.NoError(t, err)

	// One payout only, not one per day through Jan 20.
	last := res.Points[len(res.Points)-1]
	assert.True(t, last.Balance.Equal(dec("100.01")), "got %s", last.Balance)
}

func TestProjectBoundedIncomeStopsAfterTo(t *testing.T) {
	asOf := date(2026, 1, 1)
	to := date(2026, 1, 10)
	incomes := []model.IncomeEntry{
		{Source: "Gig", Amount: dec("10"), Frequency: model.FreqDaily, From: asOf, To: &to},
	}
	res, err := Project(balance("0.5", asOf), incomes, nil, model.Scenario{Name: "Idle"}, 20)
	require.NoError(t, err)

	// Active Jan 1 through Jan 10 inclusive: ten payouts of 10.
	last := res.Points[len(res.Points)-1]
	assert.True(t, last.Balance.Equal(dec("100.5")), "got %s", last.Balance)
}

func TestProjectDeathDayFixedCostsOnly(t *testing.T) {
	// From the reference data set: 500000 burning 85000/month with no income
	// dies 177 days in (first day the running balance is at or below zero).
	asOf := date(2026, 2, 19)
	fixed := []model.FixedCost{{Name: "Rent", Amount: dec("85000")}}

	res, err := Project(balance("500000", asOf), nil, fixed, model.Scenario{Name: "Idle"}, DefaultHorizonDays)
	require.NoError(t, err)

	require.NotNil(t, res.Death.DeathDay)
	assert.Equal(t, asOf.AddDate(0, 0, 177), *res.Death.DeathDay)
	assert.Equal(t, date(2026, 8, 15), *res.Death.DeathDay)

	// Every point before the death day is strictly positive; the death-day
	// point itself is the first at or below zero.
	for _, p := range res.Points {
		if p.Date.Before(*res.Death.DeathDay) {
			assert.Equal(t, 1, p.Balance.Sign(), "balance not positive at %s", p.Date)
		} else {
			break
		}
	}
	dd, ok := res.PointAt(*res.Death.DeathDay)
	require.True(t, ok)
	assert.LessOrEqual(t, dd.Balance.Sign(), 0)
}

func TestProjectContinuesPastDeathDay(t *testing.T) {
	fixed := []model.FixedCost{{Name: "Rent", Amount: dec("3000")}}
	res, err := Project(balance("500", date(2026, 1, 1)), nil, fixed, model.Scenario{Name: "Idle"}, 30)
	require.NoError(t, err)

	require.NotNil(t, res.Death.DeathDay)
	assert.Len(t, res.Points, 30, "series is never truncated at the death day")

	// Balance keeps falling after the crossing; no clamping at zero.
	last := res.Points[len(res.Points)-1]
	assert.Equal(t, -1, last.Balance.Sign())
}

func TestProjectDeathOnDayZero(t *testing.T) {
	asOf := date(2026, 2, 19)
	res, err := Project(balance("0", asOf), nil, nil, model.Scenario{Name: "Idle"}, 10)
	require.NoError(t, err)

	require.NotNil(t, res.Death.DeathDay)
	assert.Equal(t, asOf, *res.Death.DeathDay)
}

func TestProjectShortHorizonMeansSurvival(t *testing.T) {
	fixed := []model.FixedCost{{Name: "Rent", Amount: dec("85000")}}
	res, err := Project(balance("500000", date(2026, 2, 19)), nil, fixed, model.Scenario{Name: "Idle"}, 30)
	require.NoError(t, err)

	assert.Nil(t, res.Death.DeathDay, "horizon too short to cross zero is survival, not an error")
	assert.Len(t, res.Points, 30)
}

func TestProjectRejectsBadHorizon(t *testing.T) {
	for _, horizon := range []int{0, -1, -365} {
		_, err := Project(balance("100", date(2026, 1, 1)), nil, nil, model.Scenario{Name: "Idle"}, horizon)
		assert.ErrorIs(t, err, model.ErrMalformedInput, "horizon %d", horizon)
	}
}

func TestProjectRejectsMalformedEntries(t *testing.T) {
	to := date(2025, 1, 1)
	incomes := []model.IncomeEntry{
		{Source: "Backwards", Amount: dec("100"), Frequency: model.FreqMonthly, From: date(2026, 1, 1), To: &to},
	}
	_, err := Project(balance("100", date(2026, 1, 1)), incomes, nil, model.Scenario{Name: "Idle"}, 10)
	assert.ErrorIs(t, err, model.ErrMalformedInput)

	bad := model.Scenario{Name: "Bad", Activities: []model.Activity{
		{Name: "Everything", Cost: dec("100"), DaysPerWeek: dec("7.5")},
	}}
	_, err = Project(balance("100", date(2026, 1, 1)), nil, nil, bad, 10)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestProjectGrowingBalanceSurvives(t *testing.T) {
	// The worked example: net +3404.76/day means no death day ever.
	asOf := date(2026, 2, 19)
	incomes := []model.IncomeEntry{
		{Source: "Salary", Amount: dec("200000"), Frequency: model.FreqMonthly, From: date(2026, 1, 1)},
	}
	fixed := []model.FixedCost{{Name: "Rent", Amount: dec("85000")}}
	scn := model.Scenario{Name: "Minimal", Activities: []model.Activity{
		{Name: "Gym", Cost: dec("1000"), DaysPerWeek: dec("3")},
	}}

	res, err := Project(balance("500000", asOf), incomes, fixed, scn, DefaultHorizonDays)
	require.NoError(t, err)

	assert.Nil(t, res.Death.DeathDay)
	first := res.Points[0].Balance
	last := res.Points[len(res.Points)-1].Balance
	assert.True(t, last.GreaterThan(first))
}
