// Package tui provides the interactive Bubble Tea dashboard for valvelet.
package tui

import (
	"fmt"
	"strings"
	"time"

	"valvelet/internal/cli"
	"valvelet/internal/config"
	"valvelet/internal/pipeline"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// DataLoadedMsg is sent when a recompute finishes, successfully or not.
type DataLoadedMsg struct {
	Result *pipeline.LoadResult
	Err    error
}

// App is the root Bubble Tea model.
type App struct {
	// Data. result holds the last successful recompute; a failed reload
	// never clears it, only sets loadErr.
	result   *pipeline.LoadResult
	loaded   bool
	loadedAt time.Time
	loadErr  error

	reloading bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading spinner
	spinner spinner.Model

	// Pipeline parameters
	dataDir     string
	horizonDays int
	currency    string
	log         *logrus.Logger
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 180
	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(dataDir string, horizonDays int, currency string, log *logrus.Logger) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	if log == nil {
		log = logrus.StandardLogger()
	}

	return App{
		dataDir:     dataDir,
		horizonDays: horizonDays,
		currency:    currency,
		needSetup:   !config.Exists(),
		spinner:     sp,
		log:         log,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dataDir, a.horizonDays, a.log),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded && a.loadErr == nil {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings while editing
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			// Manual reload. A failure keeps the previous results on
			// screen and surfaces the error in the status bar.
			if !a.reloading {
				a.reloading = true
				return a, loadDataCmd(a.dataDir, a.horizonDays, a.log)
			}
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.reloading = false
		if msg.Err != nil {
			a.loadErr = msg.Err
			// First load failed with nothing to fall back on: still mark
			// loaded so the error view renders instead of the spinner.
			if a.result == nil {
				a.loaded = true
			}
			// On a fresh machine the data files don't exist yet; the setup
			// wizard can scaffold them.
			if a.needSetup && a.setupForm == nil {
				a.setupForm = newSetupForm(a.dataDir, &a.setupVals)
				if a.width > 0 {
					a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
				}
				return a, a.setupForm.Init()
			}
			return a, nil
		}
		a.loadErr = nil
		a.result = msg.Result
		a.loaded = true
		a.loadedAt = time.Now()

		if a.needSetup && a.setupForm == nil {
			a.setupForm = newSetupForm(a.dataDir, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		// Reload with whatever the wizard changed.
		a.reloading = true
		return a, loadDataCmd(a.dataDir, a.horizonDays, a.log)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.result == nil {
		return a.viewLoadError()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  valvelet needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ valvelet"))
	b.WriteString(subtitleStyle.Render(" · Runway Simulator"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading data files..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// viewLoadError is shown when the very first load fails and there is no
// previous result to fall back on.
func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not load data"))
	b.WriteString("\n\n")
	if a.loadErr != nil {
		b.WriteString(bodyStyle.Render(a.loadErr.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(bodyStyle.Render(fmt.Sprintf("Data dir: %s", a.dataDir)))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("Run `valvelet setup` to scaffold sample data."))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("[r] retry  [q] quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"c d m s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate settings"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"r", "Reload data files"},
		{"Enter", "Edit setting"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	errMsg := ""
	if a.loadErr != nil {
		errMsg = fmt.Sprintf("reload failed: %s (showing previous data)", rootCause(a.loadErr))
	}
	statusBar := components.RenderStatusBar(w, fmt.Sprintf("%s ago", cli.FormatAge(a.loadedAt)), errMsg)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabChart:
		content = a.renderChartTab(cw, contentH)
	case tabDeathDay:
		content = a.renderDeathDayTab(cw)
	case tabMetrics:
		content = a.renderMetricsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Tab indices, matching components.Tabs order.
const (
	tabChart = iota
	tabDeathDay
	tabMetrics
	tabSettings
)

// loadDataCmd runs the full recompute pipeline in the background.
func loadDataCmd(dataDir string, horizonDays int, log *logrus.Logger) tea.Cmd {
	return func() tea.Msg {
		lr, err := pipeline.Run(dataDir, horizonDays, log)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Result: lr}
	}
}

// rootCause unwraps to the innermost error for compact status-bar display.
func rootCause(err error) string {
	s := err.Error()
	if i := strings.LastIndex(s, ": "); i >= 0 && i+2 < len(s) {
		return s[i+2:]
	}
	return s
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
