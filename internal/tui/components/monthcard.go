package components

import (
	"fmt"
	"strings"
	"time"

	"fincal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DayState classifies how a calendar day is rendered.
type DayState uint8

const (
	DayOutside DayState = iota // outside the contract window
	DayNormal
	DayDeposit // has a recorded deposit
	DayAccrual // interest accrual date
)

// MonthData holds everything needed to render one month card.
type MonthData struct {
	Year   int
	Month  time.Month
	States [32]DayState // indexed by day of month, 1-31
	Cursor int          // day under the cursor, 0 for none
	Footer string       // plan/fact line under the grid
}

// MonthCard renders a single month as a bordered calendar grid.
// Weeks start on Monday. outerWidth includes the border.
func MonthCard(md MonthData, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 22 {
		contentWidth = 22
	}

	border := t.Border
	if md.Cursor > 0 {
		border = t.BorderBright
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	depositStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	accrualStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	cursorStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", md.Month, md.Year)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	first := time.Date(md.Year, md.Month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column index
	col := (int(first.Weekday()) + 6) % 7
	days := first.AddDate(0, 1, -1).Day()

	b.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == md.Cursor:
			cell = cursorStyle.Render(cell)
		case md.States[day] == DayDeposit:
			cell = depositStyle.Render(cell)
		case md.States[day] == DayAccrual:
			cell = accrualStyle.Render(cell)
		case md.States[day] == DayOutside:
			cell = dimStyle.Render(cell)
		default:
			cell = dayStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	if md.Footer != "" {
		b.WriteString(footerStyle.Render(md.Footer))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
