package cmd

import (
	"fmt"

	"valvelet/internal/cli"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Burn metrics per scenario",
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(_ *cobra.Command, _ []string) error {
	lr, currency, err := loadData(newLogger())
	if err != nil {
		return err
	}

	if len(lr.Result.Metrics) == 0 {
		fmt.Println("\n  No scenarios defined.")
		return nil
	}

	asOf := lr.Inputs.Balance.AsOf

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BURN METRICS  as of %s", cli.FormatDate(asOf))))
	fmt.Println()
	fmt.Printf("  Balance: %s\n\n", cli.FormatMoney(lr.Inputs.Balance.Amount, currency))

	rows := make([][]string, 0, len(lr.Result.Metrics))
	for _, m := range lr.Result.Metrics {
		rows = append(rows, []string{
			m.Scenario,
			cli.FormatMoney(m.DailyBurn, ""),
			cli.FormatMoney(m.MonthlyBurn, ""),
			cli.FormatMoney(m.DailyIncome, ""),
			cli.FormatSignedMoney(m.NetDaily, ""),
			cli.FormatDeathInfo(m.DeathDay, asOf),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Burn/day", "Burn/month", "Income/day", "Net/day", "Death Day"},
		Rows:    rows,
	}))

	return nil
}
