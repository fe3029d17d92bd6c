package cmd

import (
	"fmt"

	"valvelet/internal/config"
	"valvelet/internal/source"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	dataDir := cfg.General.DataDir
	currency := cfg.General.Currency
	themeName := cfg.Appearance.Theme
	scaffold := !source.DataFilesExist(dataDir)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the four XML data files live.").
				Value(&dataDir),

			huh.NewInput().
				Title("Currency label").
				Description("Display only; amounts are never converted.").
				Value(&currency),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),

			huh.NewConfirm().
				Title("Write sample data files?").
				Description("Scaffolds example XML files. Existing files are kept.").
				Value(&scaffold),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DataDir = dataDir
	cfg.General.Currency = currency
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("  Saved %s\n", config.ConfigPath())

	if scaffold {
		if err := source.WriteSampleData(dataDir); err != nil {
			return fmt.Errorf("writing sample data: %w", err)
		}
		fmt.Printf("  Sample data written to %s\n", dataDir)
	}

	fmt.Println("  Run `valvelet` to open the dashboard.")
	return nil
}
