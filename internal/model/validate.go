package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedInput marks an input-contract violation. All Validate errors
// wrap it, so callers can errors.Is against a single sentinel.
var ErrMalformedInput = errors.New("malformed input")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

var daysPerWeekMax = decimal.NewFromInt(7)

// Validate checks the snapshot's invariants.
func (b BalanceSnapshot) Validate() error {
	if b.AsOf.IsZero() {
		return malformed("balance snapshot has no as-of date")
	}
	return nil
}

// Validate checks the entry's invariants: a non-negative amount and an
// ordered date range when the upper bound is present.
func (e IncomeEntry) Validate() error {
	if e.Source == "" {
		return malformed("income entry has no source")
	}
	if e.Amount.IsNegative() {
		return malformed("income %q: negative amount %s", e.Source, e.Amount)
	}
	if e.From.IsZero() {
		return malformed("income %q: missing from date", e.Source)
	}
	if e.To != nil && e.From.After(*e.To) {
		return malformed("income %q: from %s after to %s",
			e.Source, e.From.Format("2006-01-02"), e.To.Format("2006-01-02"))
	}
	return nil
}

// Validate checks the cost's invariants.
func (c FixedCost) Validate() error {
	if c.Name == "" {
		return malformed("fixed cost has no name")
	}
	if c.Amount.IsNegative() {
		return malformed("fixed cost %q: negative amount %s", c.Name, c.Amount)
	}
	return nil
}

// Validate checks the activity's invariants, including the [0, 7] cadence.
func (a Activity) Validate() error {
	if a.Name == "" {
		return malformed("activity has no name")
	}
	if a.Cost.IsNegative() {
		return malformed("activity %q: negative cost %s", a.Name, a.Cost)
	}
	if a.DaysPerWeek.IsNegative() || a.DaysPerWeek.GreaterThan(daysPerWeekMax) {
		return malformed("activity %q: days-per-week %s outside [0, 7]", a.Name, a.DaysPerWeek)
	}
	return nil
}

// Validate checks the scenario and every activity in it.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return malformed("scenario has no name")
	}
	for _, a := range s.Activities {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// Validate checks every record in the input set. The first violation wins;
// no partial projection is produced for a bad data set.
func (in Inputs) Validate() error {
	if err := in.Balance.Validate(); err != nil {
		return err
	}
	for _, e := range in.Incomes {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, c := range in.FixedCosts {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, s := range in.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
