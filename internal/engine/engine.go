package engine

import (
	"time"

	"valvelet/internal/model"
)

const (
	// DefaultHorizonDays caps the walk at roughly a century.
	DefaultHorizonDays = 36500

	// chartFallbackDays bounds the chart when every scenario survives.
	chartFallbackDays = 3650
)

// RunResult is everything one recompute produces: the full series per
// scenario (input order), the ranked death days, and the per-scenario
// metrics (input order).
type RunResult struct {
	Projections []model.ProjectionResult
	Ranked      []model.DeathDayResult
	Metrics     []model.ScenarioMetrics

	// ChartLen is how many leading points the chart should draw: enough to
	// include the latest death day, or the fallback window when every
	// scenario survives.
	ChartLen int
}

// MetricsFor returns the metrics entry for a scenario name, if present.
func (r *RunResult) MetricsFor(name string) (model.ScenarioMetrics, bool) {
	for _, m := range r.Metrics {
		if m.Scenario == name {
			return m, true
		}
	}
	return model.ScenarioMetrics{}, false
}

// ProjectionFor returns the projection for a scenario name, if present.
func (r *RunResult) ProjectionFor(name string) (model.ProjectionResult, bool) {
	for _, p := range r.Projections {
		if p.Scenario == name {
			return p, true
		}
	}
	return model.ProjectionResult{}, false
}

// Run recomputes everything from one input snapshot: every scenario is
// projected independently against the same baseline, then metrics and the
// ranking are derived. The whole computation is pure and repeatable; nothing
// is cached between runs.
//
// An empty scenario set yields empty results, not an error.
func Run(in model.Inputs, horizonDays int) (*RunResult, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	res := &RunResult{}
	for _, scn := range in.Scenarios {
		proj, err := Project(in.Balance, in.Incomes, in.FixedCosts, scn, horizonDays)
		if err != nil {
			return nil, err
		}
		m := Metrics(scn, in.Incomes, in.FixedCosts, in.Balance.AsOf)
		m.DeathDay = proj.Death.DeathDay
		res.Projections = append(res.Projections, proj)
		res.Metrics = append(res.Metrics, m)
	}

	deaths := make([]model.DeathDayResult, len(res.Projections))
	for i, p := range res.Projections {
		deaths[i] = p.Death
	}
	res.Ranked = Rank(deaths)
	res.ChartLen = chartLen(res.Projections, horizonDays)

	return res, nil
}

// chartLen is the number of points worth charting: up to and including the
// latest death day among dying scenarios, or a fixed fallback window when
// nobody dies within the horizon.
func chartLen(projections []model.ProjectionResult, horizonDays int) int {
	longest := 0
	for _, p := range projections {
		if p.Death.DeathDay == nil {
			continue
		}
		days := daysBetween(p.Points[0].Date, *p.Death.DeathDay) + 1
		if days > longest {
			longest = days
		}
	}
	if longest == 0 {
		longest = chartFallbackDays
	}
	if longest > horizonDays {
		longest = horizonDays
	}
	return longest
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
