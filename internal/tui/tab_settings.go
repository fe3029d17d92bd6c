package tui

import (
	"fmt"
	"strconv"
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/config"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldDataDir = iota
	settingsFieldHorizon
	settingsFieldCurrency
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldDataDir:
		ti.Placeholder = "dat"
		ti.SetValue(cfg.General.DataDir)
	case settingsFieldHorizon:
		ti.Placeholder = "36500"
		ti.SetValue(strconv.Itoa(cfg.General.HorizonDays))
	case settingsFieldCurrency:
		ti.Placeholder = "JPY"
		ti.SetValue(cfg.General.Currency)
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave persists the edited field and returns a reload command when
// the change affects the simulation.
func (a *App) settingsSave() tea.Cmd {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())
	reload := false

	switch a.settings.cursor {
	case settingsFieldDataDir:
		if val != "" && val != cfg.General.DataDir {
			cfg.General.DataDir = val
			a.dataDir = val
			reload = true
		}
	case settingsFieldHorizon:
		var d int
		if _, err := fmt.Sscanf(val, "%d", &d); err == nil && d > 0 {
			cfg.General.HorizonDays = d
			a.horizonDays = d
			reload = true
		}
	case settingsFieldCurrency:
		cfg.General.Currency = val
		a.currency = val
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(cfg)

	if reload && !a.reloading {
		a.reloading = true
		return loadDataCmd(a.dataDir, a.horizonDays, a.log)
	}
	return nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Data Directory", cfg.General.DataDir},
		{"Horizon Days", strconv.Itoa(cfg.General.HorizonDays)},
		{"Currency Label", cfg.General.Currency},
		{"Theme", cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Scenarios loaded: ") + valueStyle.Render(cli.FormatNumber(int64(len(a.result.Inputs.Scenarios)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Recompute time:   ") + valueStyle.Render(fmt.Sprintf("%.0fms", a.result.LoadTime.Seconds()*1000)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:      ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
