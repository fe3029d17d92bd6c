package components

import (
	"strings"
	"testing"

	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		widths := LayoutRow(103, n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 103 {
			t.Errorf("LayoutRow(103, %d) sums to %d, want 103", n, sum)
		}
	}
}

func TestLineChartShape(t *testing.T) {
	theme.SetActive("flexoki-dark")

	series := []Series{
		{Name: "Minimal", Values: []float64{500000, 400000, 300000, 200000, 100000}, Color: theme.Active.Yellow, DeathIdx: -1},
		{Name: "Lavish", Values: []float64{500000, 250000, 0, -250000, -500000}, Color: theme.Active.Magenta, DeathIdx: 2},
	}
	out := LineChart(series, []string{"2026-02-19", "2026-02-23"}, 60, 10)

	lines := strings.Split(out, "\n")
	// chart rows + axis + label row
	if len(lines) != 12 {
		t.Errorf("expected 12 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "✗") {
		t.Error("death marker missing from chart")
	}
	if !strings.Contains(out, "2026-02-19") {
		t.Error("x-axis start label missing")
	}
}

func TestLineChartEmpty(t *testing.T) {
	if LineChart(nil, nil, 60, 10) != "" {
		t.Error("empty series should render nothing")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('d'); idx != 1 {
		t.Errorf("expected Death Day at index 1, got %d", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("unknown key should return -1, got %d", idx)
	}
}
