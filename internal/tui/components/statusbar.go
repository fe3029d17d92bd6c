package components

import (
	"fmt"

	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. When errMsg is non-empty it
// replaces the data-age readout so a failed reload stays visible.
func RenderStatusBar(width int, dataAge, errMsg string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]eload  [q]uit"
	right := ""
	if errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		right = errStyle.Render(errMsg) + " "
	} else if dataAge != "" {
		right = fmt.Sprintf("Data: %s ", dataAge)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
