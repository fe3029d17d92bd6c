package tui

import (
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderDeathDayTab lists scenarios ranked soonest-death-first, each with a
// runway bar scaled to the comparison window.
func (a App) renderDeathDayTab(cw int) string {
	t := theme.Active
	res := a.result.Result
	asOf := a.result.Inputs.Balance.AsOf

	if len(res.Ranked) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No scenarios defined. Add some to scenarios.xml and press r.")
		return components.ContentCard("Death Day", empty, cw)
	}

	labelW := 0
	for _, r := range res.Ranked {
		if len(r.Scenario) > labelW {
			labelW = len(r.Scenario)
		}
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - labelW - 40
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	var b strings.Builder
	for i, r := range res.Ranked {
		pct := 1.0
		if r.DeathDay != nil && res.ChartLen > 0 {
			days := int(r.DeathDay.Sub(asOf).Hours() / 24)
			pct = float64(days) / float64(res.ChartLen)
		}
		b.WriteString(components.RunwayBar(r.Scenario, pct, cli.FormatDeathInfo(r.DeathDay, asOf), labelW, barW))
		if i < len(res.Ranked)-1 {
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n\n")
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	b.WriteString(dimStyle.Render("Ranked soonest first. Ties keep scenario file order."))

	return components.ContentCard("Death Day", b.String(), cw)
}
