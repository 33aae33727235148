package components

import (
	"strings"

	"fincal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and a transient message on the right.
func RenderStatusBar(width int, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [enter]edit  [d]elete  [s]ettings  [?]help  [q]uit"
	right := ""
	if message != "" {
		right = message + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left + strings.Repeat(" ", padding) + right
	return style.Render(bar)
}
