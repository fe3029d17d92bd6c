package tui

import (
	"fmt"
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderChartTab draws all scenario projections as one shared-axis line
// chart, truncated to the comparison window so survivors don't flatten the
// interesting part.
func (a App) renderChartTab(cw, contentH int) string {
	t := theme.Active
	res := a.result.Result

	if len(res.Projections) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No scenarios defined. Add some to scenarios.xml and press r.")
		return components.ContentCard("Balance Projection", empty, cw)
	}

	series := make([]components.Series, 0, len(res.Projections))
	var xLabels []string
	for i, proj := range res.Projections {
		p := proj.Truncated(res.ChartLen)

		values := make([]float64, len(p.Points))
		for j, pt := range p.Points {
			values[j] = pt.Balance.InexactFloat64()
		}

		deathIdx := -1
		if p.Death.DeathDay != nil {
			if idx := int(p.Death.DeathDay.Sub(p.Points[0].Date).Hours() / 24); idx < len(p.Points) {
				deathIdx = idx
			}
		}

		series = append(series, components.Series{
			Name:     p.Scenario,
			Values:   values,
			Color:    t.ScenarioColor(i),
			DeathIdx: deathIdx,
		})

		if len(p.Points) > len(xLabels) {
			xLabels = make([]string, len(p.Points))
			for j, pt := range p.Points {
				xLabels[j] = cli.FormatDate(pt.Date)
			}
		}
	}

	innerW := components.CardInnerWidth(cw)
	chartH := contentH - 8 // card border, legend, axis rows
	if chartH < 6 {
		chartH = 6
	}

	var b strings.Builder
	b.WriteString(components.LineChart(series, xLabels, innerW, chartH))
	b.WriteString("\n\n")
	b.WriteString(components.ChartLegend(series))

	windowLabel := fmt.Sprintf("Balance Projection · %s days", cli.FormatNumber(int64(res.ChartLen)))
	return components.ContentCard(windowLabel, b.String(), cw)
}
