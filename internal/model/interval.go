package model

import "time"

// Interval is a day-granularity date range. Unbounded marks an open upper
// bound, i.e. [From, +inf); To is ignored while Unbounded is set. All dates
// are expected at midnight granularity, the way the source layer parses them.
type Interval struct {
	From      time.Time
	To        time.Time
	Unbounded bool
}

// NewInterval returns the closed interval [from, to].
func NewInterval(from, to time.Time) Interval {
	return Interval{From: from, To: to}
}

// UnboundedFrom returns the interval [from, +inf).
func UnboundedFrom(from time.Time) Interval {
	return Interval{From: from, Unbounded: true}
}

// SingleDay returns the one-day interval [d, d].
func SingleDay(d time.Time) Interval {
	return Interval{From: d, To: d}
}

// Always returns an interval containing every simulated date. The zero From
// predates any plausible as-of date, so containment degenerates to true.
func Always() Interval {
	return Interval{Unbounded: true}
}

// Contains reports whether d falls inside the interval.
func (iv Interval) Contains(d time.Time) bool {
	if d.Before(iv.From) {
		return false
	}
	return iv.Unbounded || !d.After(iv.To)
}
