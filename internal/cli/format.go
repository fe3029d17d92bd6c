// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney renders an amount with comma separators and a currency label.
// Fractional parts are shown only when the amount has one.
// e.g., 85000 JPY -> "85,000 JPY", 2833.33 JPY -> "2,833.33 JPY"
func FormatMoney(amount decimal.Decimal, currency string) string {
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole).Abs()

	s := FormatNumber(whole.IntPart())
	if whole.IsZero() && rounded.Sign() < 0 {
		s = "-" + s
	}
	if !frac.IsZero() {
		cents := frac.Mul(decimal.NewFromInt(100)).IntPart()
		s = fmt.Sprintf("%s.%02d", s, cents)
	}
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatSignedMoney is FormatMoney with an explicit sign on positive values.
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	if amount.Sign() > 0 {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// FormatDeathInfo describes a death day relative to the projection start.
// A nil death day means the scenario never runs out within the horizon.
// e.g., "2026-08-15 (177 days / 5.9 months)" or "Survives"
func FormatDeathInfo(deathDay *time.Time, asOf time.Time) string {
	if deathDay == nil {
		return "Survives"
	}
	days := int(deathDay.Sub(asOf).Hours() / 24)
	months := float64(days) / 30.0
	return fmt.Sprintf("%s (%s days / %.1f months)", deathDay.Format(dateLayout), FormatNumber(int64(days)), months)
}

// FormatAge renders the time since a load as a compact duration.
// e.g., "12s", "3m", "2h 5m"
func FormatAge(since time.Time) string {
	secs := int64(time.Since(since).Seconds())
	if secs < 0 {
		secs = 0
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%ds", secs)
}
