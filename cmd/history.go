package cmd

import (
	"fmt"

	"valvelet/internal/cli"
	"valvelet/internal/config"
	"valvelet/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Journaled balance readings over time",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	j, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	entries, err := j.Entries()
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("\n  No balance readings journaled yet.")
		fmt.Println("  Readings are recorded each time the data files are loaded.")
		return nil
	}

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BALANCE HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			cli.FormatDate(e.AsOf),
			cli.FormatMoney(e.Amount, cfg.General.Currency),
			e.RecordedAt.Format("2006-01-02 15:04"),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"As Of", "Balance", "Recorded"},
		Rows:    rows,
	}))

	return nil
}
