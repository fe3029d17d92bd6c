// Package model defines domain types for valvelet's runway simulation.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency describes how often an income entry pays out.
type Frequency int

const (
	FreqMonthly Frequency = iota
	FreqWeekly
	FreqDaily
	FreqOnce
)

// String returns the wire name of the frequency as used in income.xml.
func (f Frequency) String() string {
	switch f {
	case FreqMonthly:
		return "monthly"
	case FreqWeekly:
		return "weekly"
	case FreqDaily:
		return "daily"
	case FreqOnce:
		return "once"
	}
	return "unknown"
}

// ParseFrequency maps a frequency attribute value to its tagged variant.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "monthly":
		return FreqMonthly, nil
	case "weekly":
		return FreqWeekly, nil
	case "daily":
		return FreqDaily, nil
	case "once":
		return FreqOnce, nil
	}
	return 0, malformed("unknown frequency %q", s)
}

// BalanceSnapshot is the simulation's origin point: the observed balance
// and the date it was observed.
type BalanceSnapshot struct {
	Amount decimal.Decimal
	AsOf   time.Time
}

// IncomeEntry is one recurring (or one-off) cash-flow stream.
// A nil To means the stream is open-ended from From.
type IncomeEntry struct {
	Source    string
	Amount    decimal.Decimal
	Frequency Frequency
	From      time.Time
	To        *time.Time
}

// FixedCost is a monthly cost that applies for the whole projection horizon.
type FixedCost struct {
	Name   string
	Amount decimal.Decimal
}

// Activity is one recurring discretionary expense within a scenario.
// DaysPerWeek may be fractional (e.g. 0.5 = every other week).
type Activity struct {
	Name        string
	Cost        decimal.Decimal
	DaysPerWeek decimal.Decimal
}

// Scenario bundles activities into one alternative lifestyle. Scenarios are
// mutually exclusive futures evaluated against the same baseline.
type Scenario struct {
	Name       string
	Activities []Activity
}

// Inputs is the full parsed data set the engine runs on.
type Inputs struct {
	Balance    BalanceSnapshot
	Incomes    []IncomeEntry
	FixedCosts []FixedCost
	Scenarios  []Scenario
}
