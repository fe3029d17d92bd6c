// Package engine implements the runway simulation: frequency normalization,
// day-by-day balance projection, and the burn metrics derived from both.
package engine

import (
	"github.com/shopspring/decimal"

	"valvelet/internal/model"
)

// Fixed divisors, matching the reference behavior. Monthly amounts are
// spread over a flat 30 days, never calendar-accurate month lengths.
var (
	daysPerMonth = decimal.NewFromInt(30)
	daysPerWeek  = decimal.NewFromInt(7)
)

// NormalizeIncome reduces an income entry to a uniform daily rate over its
// active interval. A "once" entry pays its full amount on the from date
// only; any to date on it is ignored.
func NormalizeIncome(e model.IncomeEntry) model.NormalizedRate {
	if e.Frequency == model.FreqOnce {
		return model.NormalizedRate{
			Daily:  e.Amount,
			Active: model.SingleDay(e.From),
		}
	}

	var daily decimal.Decimal
	switch e.Frequency {
	case model.FreqMonthly:
		daily = e.Amount.Div(daysPerMonth)
	case model.FreqWeekly:
		daily = e.Amount.Div(daysPerWeek)
	case model.FreqDaily:
		daily = e.Amount
	}

	active := model.UnboundedFrom(e.From)
	if e.To != nil {
		active = model.NewInterval(e.From, *e.To)
	}
	return model.NormalizedRate{Daily: daily, Active: active}
}

// NormalizeFixedCost spreads a monthly cost over 30 days, active for the
// whole horizon.
func NormalizeFixedCost(c model.FixedCost) model.NormalizedRate {
	return model.NormalizedRate{
		Daily:  c.Amount.Div(daysPerMonth),
		Active: model.Always(),
	}
}

// ActivityDailyCost is the smoothed expected daily spend of an activity:
// cost x days-per-week / 7. Occurrences are averaged, not scheduled on
// specific weekdays.
func ActivityDailyCost(a model.Activity) decimal.Decimal {
	return a.Cost.Mul(a.DaysPerWeek).Div(daysPerWeek)
}

// ScenarioDailyCost sums the daily cost of every activity in the scenario.
func ScenarioDailyCost(s model.Scenario) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Activities {
		total = total.Add(ActivityDailyCost(a))
	}
	return total
}
