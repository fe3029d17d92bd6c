package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedRate is one cash-flow stream reduced to a uniform daily amount
// over its active interval. Derived, never persisted.
type NormalizedRate struct {
	Daily  decimal.Decimal
	Active Interval
}

// ProjectionPoint is one simulated day's balance.
type ProjectionPoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// DeathDayResult names the first date a scenario's balance reaches zero or
// below. A nil DeathDay means the balance never crossed within the horizon.
type DeathDayResult struct {
	Scenario string
	DeathDay *time.Time
}

// Survives reports whether the scenario outlived the simulation horizon.
func (r DeathDayResult) Survives() bool {
	return r.DeathDay == nil
}

// ProjectionResult is the full day-by-day series for one scenario.
type ProjectionResult struct {
	Scenario string
	Points   []ProjectionPoint
	Death    DeathDayResult
}

// PointAt returns the point recorded for a given date, if the date falls
// inside the series.
func (r ProjectionResult) PointAt(d time.Time) (ProjectionPoint, bool) {
	if len(r.Points) == 0 || d.Before(r.Points[0].Date) {
		return ProjectionPoint{}, false
	}
	idx := int(d.Sub(r.Points[0].Date).Hours() / 24)
	if idx >= len(r.Points) {
		return ProjectionPoint{}, false
	}
	return r.Points[idx], true
}

// Truncated returns a copy whose point series is cut to at most n entries.
// The chart layer uses this so surviving scenarios don't stretch the x-axis
// out to the full horizon.
func (r ProjectionResult) Truncated(n int) ProjectionResult {
	if n < 0 {
		n = 0
	}
	if n > len(r.Points) {
		n = len(r.Points)
	}
	return ProjectionResult{
		Scenario: r.Scenario,
		Points:   r.Points[:n],
		Death:    r.Death,
	}
}

// ScenarioMetrics is the point-in-time burn summary for one scenario.
// DeathDay is copied from the projection result, never re-derived.
type ScenarioMetrics struct {
	Scenario    string
	DailyBurn   decimal.Decimal
	MonthlyBurn decimal.Decimal
	DailyIncome decimal.Decimal
	NetDaily    decimal.Decimal
	DeathDay    *time.Time
}
