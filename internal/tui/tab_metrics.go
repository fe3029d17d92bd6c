package tui

import (
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// renderMetricsTab shows the burn summary per scenario plus the shared
// baseline numbers.
func (a App) renderMetricsTab(cw int) string {
	t := theme.Active
	res := a.result.Result
	in := a.result.Inputs
	cur := a.currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder

	// Shared baseline: the balance reading every scenario starts from.
	baseline := []struct{ Label, Value, Detail string }{
		{"Balance", cli.FormatMoney(in.Balance.Amount, cur), "as of " + cli.FormatDate(in.Balance.AsOf)},
		{"Income Streams", cli.FormatNumber(int64(len(in.Incomes))), ""},
		{"Fixed Costs", cli.FormatNumber(int64(len(in.FixedCosts))), ""},
		{"Scenarios", cli.FormatNumber(int64(len(in.Scenarios))), ""},
	}
	b.WriteString(components.MetricCardRow(baseline, cw))
	b.WriteString("\n")

	if len(res.Metrics) == 0 {
		empty := labelStyle.Render("No scenarios defined. Add some to scenarios.xml and press r.")
		b.WriteString(components.ContentCard("Scenarios", empty, cw))
		return b.String()
	}

	for _, m := range res.Metrics {
		var body strings.Builder
		row := func(label, value string) {
			body.WriteString(labelStyle.Render(label))
			body.WriteString(valueStyle.Render(value))
			body.WriteString("\n")
		}
		monthly := decimal.NewFromInt(30)
		row("Daily burn:     ", cli.FormatMoney(m.DailyBurn, cur))
		row("Monthly burn:   ", cli.FormatMoney(m.MonthlyBurn, cur))
		row("Daily income:   ", cli.FormatMoney(m.DailyIncome, cur))
		row("Monthly income: ", cli.FormatMoney(m.DailyIncome.Mul(monthly), cur))
		row("Net per day:    ", cli.FormatSignedMoney(m.NetDaily, cur))
		row("Net per month:  ", cli.FormatSignedMoney(m.NetDaily.Mul(monthly), cur))
		body.WriteString(labelStyle.Render("Death day:      "))
		body.WriteString(valueStyle.Render(cli.FormatDeathInfo(m.DeathDay, in.Balance.AsOf)))

		b.WriteString(components.ContentCard(m.Scenario, body.String(), cw))
		b.WriteString("\n")
	}

	return b.String()
}
