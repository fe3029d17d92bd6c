package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-85,000", FormatNumber(-85000))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "85,000 JPY", FormatMoney(decimal.NewFromInt(85000), "JPY"))
	assert.Equal(t, "2,833.33 JPY", FormatMoney(decimal.RequireFromString("2833.333333"), "JPY"))
	assert.Equal(t, "-1,500 JPY", FormatMoney(decimal.NewFromInt(-1500), "JPY"))
	assert.Equal(t, "-0.50 JPY", FormatMoney(decimal.RequireFromString("-0.5"), "JPY"))
	assert.Equal(t, "500,000", FormatMoney(decimal.NewFromInt(500000), ""))
}

func TestFormatSignedMoney(t *testing.T) {
	assert.Equal(t, "+3,404.76 JPY", FormatSignedMoney(decimal.RequireFromString("3404.76"), "JPY"))
	assert.Equal(t, "-3,404.76 JPY", FormatSignedMoney(decimal.RequireFromString("-3404.76"), "JPY"))
}

func TestFormatDeathInfo(t *testing.T) {
	asOf := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
	death := asOf.AddDate(0, 0, 177)

	assert.Equal(t, "2026-08-15 (177 days / 5.9 months)", FormatDeathInfo(&death, asOf))
	assert.Equal(t, "Survives", FormatDeathInfo(nil, asOf))
}

func TestRenderTableShape(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Scenario", "Death Day"},
		Rows: [][]string{
			{"Minimal", "Survives"},
			{"Lavish", "2026-08-15"},
		},
	})
	assert.Contains(t, out, "Scenario")
	assert.Contains(t, out, "Lavish")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil))
	s := RenderSparkline([]float64{1, 2, 3, 4})
	assert.Len(t, []rune(s), 4)
}
