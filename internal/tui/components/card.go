// Package components provides reusable TUI widgets for the fincal calendar.
package components

import (
	"fincal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small metric card with label and value.
// outerWidth is the total rendered width including border.
func MetricCard(label, value string, valueColor lipgloss.Color, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	color := valueColor
	if color == "" {
		color = t.TextPrimary
	}
	valueStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)

	return cardStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

// Metric is one entry in a MetricCardRow.
type Metric struct {
	Label string
	Value string
	Color lipgloss.Color
}

// MetricCardRow renders a row of metric cards side by side.
// totalWidth is the full row width; cards sum to exactly that.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))

	var rendered []string
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m.Label, m.Value, m.Color, widths[i]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
