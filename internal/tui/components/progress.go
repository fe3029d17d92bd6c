package components

import (
	"fmt"

	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRunway returns green/yellow/orange/red based on how much of the
// window a scenario survives (1.0 = full runway).
func ColorForRunway(pct float64) string {
	t := theme.Active
	switch {
	case pct < 0.25:
		return string(t.Red)
	case pct < 0.5:
		return string(t.Orange)
	case pct < 0.75:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// RunwayBar renders a labeled bar showing the fraction of the comparison
// window a scenario survives, with the death info appended.
func RunwayBar(label string, pct float64, deathInfo string, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForRunway(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	infoStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render("  ") +
		infoStyle.Render(deathInfo)
}
