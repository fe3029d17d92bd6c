package tui

import (
	"fmt"

	"valvelet/internal/config"
	"valvelet/internal/source"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects first-run wizard answers.
type setupValues struct {
	Currency string
	Theme    string
	Scaffold bool
}

// newSetupForm builds the first-run wizard shown when no config file exists.
func newSetupForm(dataDir string, vals *setupValues) *huh.Form {
	defaults := config.DefaultConfig()
	vals.Currency = defaults.General.Currency
	vals.Theme = defaults.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to valvelet").
				Description(fmt.Sprintf("Data files live in %s. Let's set up a few things.", dataDir)),

			huh.NewInput().
				Title("Currency label").
				Description("Display only; amounts are never converted.").
				Value(&vals.Currency),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Write sample data files?").
				Description("Scaffolds the four XML files with example entries. Existing files are kept.").
				Value(&vals.Scaffold),
		),
	)
}

func (a *App) saveSetupConfig() {
	cfg := loadConfigOrDefault()

	if a.setupVals.Currency != "" {
		cfg.General.Currency = a.setupVals.Currency
		a.currency = a.setupVals.Currency
	}
	if a.setupVals.Theme != "" {
		cfg.Appearance.Theme = a.setupVals.Theme
		theme.SetActive(a.setupVals.Theme)
	}

	if err := config.Save(cfg); err != nil {
		a.log.WithError(err).Warn("could not save config")
	}

	if a.setupVals.Scaffold {
		if err := source.WriteSampleData(a.dataDir); err != nil {
			a.log.WithError(err).Warn("could not write sample data")
		}
	}
}
