package cmd

import (
	"fmt"

	"valvelet/internal/cli"

	"github.com/spf13/cobra"
)

var deathdayCmd = &cobra.Command{
	Use:   "deathday",
	Short: "Ranked death days per scenario",
	RunE:  runDeathday,
}

func init() {
	rootCmd.AddCommand(deathdayCmd)
}

func runDeathday(_ *cobra.Command, _ []string) error {
	lr, _, err := loadData(newLogger())
	if err != nil {
		return err
	}

	if len(lr.Result.Ranked) == 0 {
		fmt.Println("\n  No scenarios defined.")
		return nil
	}

	asOf := lr.Inputs.Balance.AsOf

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEATH DAY  as of %s", cli.FormatDate(asOf))))
	fmt.Println()

	rows := make([][]string, 0, len(lr.Result.Ranked))
	for i, r := range lr.Result.Ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Scenario,
			cli.FormatDeathInfo(r.DeathDay, asOf),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Scenario", "Death Day"},
		Rows:    rows,
	}))

	return nil
}
