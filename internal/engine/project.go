package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"valvelet/internal/model"
)

// Project walks the balance forward one day at a time under a single
// scenario. The returned series has exactly horizonDays points in strictly
// increasing date order starting at the snapshot's as-of date.
//
// Point 0 carries the unmodified snapshot balance; each day's net delta
// (incomes minus fixed costs minus scenario activities) is applied between
// that day's point and the next. The walk continues past a zero crossing so
// the full series is available for charting; the death day records the first
// date the balance was at or below zero.
func Project(
	balance model.BalanceSnapshot,
	incomes []model.IncomeEntry,
	fixedCosts []model.FixedCost,
	scenario model.Scenario,
	horizonDays int,
) (model.ProjectionResult, error) {
	if horizonDays <= 0 {
		return model.ProjectionResult{}, fmt.Errorf("%w: horizon must be positive, got %d",
			model.ErrMalformedInput, horizonDays)
	}
	if err := balance.Validate(); err != nil {
		return model.ProjectionResult{}, err
	}
	for _, e := range incomes {
		if err := e.Validate(); err != nil {
			return model.ProjectionResult{}, err
		}
	}
	for _, c := range fixedCosts {
		if err := c.Validate(); err != nil {
			return model.ProjectionResult{}, err
		}
	}
	if err := scenario.Validate(); err != nil {
		return model.ProjectionResult{}, err
	}

	rates := make([]model.NormalizedRate, len(incomes))
	for i, e := range incomes {
		rates[i] = NormalizeIncome(e)
	}

	outflow := ScenarioDailyCost(scenario)
	for _, c := range fixedCosts {
		outflow = outflow.Add(NormalizeFixedCost(c).Daily)
	}

	points := make([]model.ProjectionPoint, 0, horizonDays)
	running := balance.Amount
	var death *time.Time

	for i := 0; i < horizonDays; i++ {
		d := balance.AsOf.AddDate(0, 0, i)
		points = append(points, model.ProjectionPoint{Date: d, Balance: running})

		if death == nil && running.Sign() <= 0 {
			dd := d
			death = &dd
		}

		income := decimal.Zero
		for _, r := range rates {
			if r.Active.Contains(d) {
				income = income.Add(r.Daily)
			}
		}
		running = running.Add(income).Sub(outflow)
	}

	return model.ProjectionResult{
		Scenario: scenario.Name,
		Points:   points,
		Death:    model.DeathDayResult{Scenario: scenario.Name, DeathDay: death},
	}, nil
}
