package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"valvelet/internal/model"
)

// Metrics computes the point-in-time burn summary for a scenario, evaluated
// as of the given date. The death day is left unset here; the caller copies
// it from the projection result so there is a single source of truth.
func Metrics(
	scenario model.Scenario,
	incomes []model.IncomeEntry,
	fixedCosts []model.FixedCost,
	asOf time.Time,
) model.ScenarioMetrics {
	dailyBurn := ScenarioDailyCost(scenario)
	for _, c := range fixedCosts {
		dailyBurn = dailyBurn.Add(NormalizeFixedCost(c).Daily)
	}

	dailyIncome := decimal.Zero
	for _, e := range incomes {
		r := NormalizeIncome(e)
		if r.Active.Contains(asOf) {
			dailyIncome = dailyIncome.Add(r.Daily)
		}
	}

	return model.ScenarioMetrics{
		Scenario:    scenario.Name,
		DailyBurn:   dailyBurn,
		MonthlyBurn: dailyBurn.Mul(daysPerMonth),
		DailyIncome: dailyIncome,
		NetDaily:    dailyIncome.Sub(dailyBurn),
	}
}

// Rank orders death-day results earliest first. Survivors sort after every
// dying scenario; ties and survivors keep their relative input order.
func Rank(results []model.DeathDayResult) []model.DeathDayResult {
	ranked := append([]model.DeathDayResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].DeathDay, ranked[j].DeathDay
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return ranked
}
