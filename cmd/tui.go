package cmd

import (
	"fmt"
	"io"

	"valvelet/internal/config"
	"valvelet/internal/tui"
	"valvelet/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	dataDir, horizon, currency := resolveOptions()

	// The dashboard owns the screen; route logs away from it.
	log := newLogger()
	log.SetOutput(io.Discard)

	app := tui.NewApp(dataDir, horizon, currency, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
