// Package tui provides the interactive Bubble Tea deposit calendar for fincal.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"
	"fincal/internal/model"
	"fincal/internal/store"
	"fincal/internal/tui/components"
	"fincal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SnapshotMsg is sent when the contract and ledger finish loading.
type SnapshotMsg struct {
	Settings model.ContractSettings
	Ledger   model.Ledger
	Err      error
}

// App is the root Bubble Tea model: a half-year deposit calendar.
type App struct {
	store *store.Store
	today time.Time

	// Data
	settings model.ContractSettings
	ledger   model.Ledger
	loaded   bool
	loadErr  error

	// View state
	year   int
	half   int // 1 = Jan-Jun, 2 = Jul-Dec
	cursor time.Time

	width    int
	height   int
	showHelp bool

	// Amount entry for the cursor day
	entering bool
	entry    textinput.Model
	entryErr string

	// Contract settings form
	settingsForm *huh.Form
	formVals     settingsFormValues

	statusMsg string
}

const minTerminalWidth = 74

// NewApp creates the calendar app model.
func NewApp(s *store.Store, today time.Time) App {
	return App{
		store: s,
		today: model.DateOnly(today),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadSnapshotCmd(a.store)
}

func loadSnapshotCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		settings, err := s.Settings()
		if err != nil {
			return SnapshotMsg{Err: err}
		}
		ledger, err := s.AllDeposits()
		if err != nil {
			return SnapshotMsg{Err: err}
		}
		return SnapshotMsg{Settings: settings, Ledger: ledger}
	}
}

// lastDepositDay is the final date deposits are accepted on.
func (a App) lastDepositDay() time.Time {
	return a.settings.EndDate.AddDate(0, 0, -1)
}

// clampToWindow confines a date to the contract deposit window.
func (a App) clampToWindow(t time.Time) time.Time {
	if t.Before(a.settings.StartDate) {
		return a.settings.StartDate
	}
	if last := a.lastDepositDay(); t.After(last) {
		return last
	}
	return t
}

// pageOf returns the half-year page containing a date.
func pageOf(t time.Time) (int, int) {
	if t.Month() >= time.July {
		return t.Year(), 2
	}
	return t.Year(), 1
}

// pageRange returns the first and last day of a half-year page.
func pageRange(year, half int) (time.Time, time.Time) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if half == 2 {
		first = time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	}
	return first, first.AddDate(0, 6, -1)
}

// pageIntersectsWindow reports whether a page overlaps the deposit window.
func (a App) pageIntersectsWindow(year, half int) bool {
	first, last := pageRange(year, half)
	return !last.Before(a.settings.StartDate) && !first.After(a.lastDepositDay())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.settingsForm != nil {
			a.settingsForm = a.settingsForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case SnapshotMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.loaded = true
			return a, nil
		}
		a.settings = msg.Settings
		a.ledger = msg.Ledger
		a.loaded = true
		if a.cursor.IsZero() {
			a.cursor = a.clampToWindow(a.today)
		} else {
			a.cursor = a.clampToWindow(a.cursor)
		}
		a.year, a.half = pageOf(a.cursor)
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded || a.loadErr != nil {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		if a.settingsForm != nil {
			return a.updateSettingsForm(msg)
		}

		if a.entering {
			return a.updateEntry(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateCalendar(key)
	}

	// Forward unhandled messages to the settings form or the amount
	// input (cursor blinks, etc.)
	if a.settingsForm != nil {
		return a.updateSettingsForm(msg)
	}
	if a.entering {
		var cmd tea.Cmd
		a.entry, cmd = a.entry.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateCalendar(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit

	case "?":
		a.showHelp = true
		return a, nil

	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "up", "k":
		a.moveCursor(-7)
	case "down", "j":
		a.moveCursor(7)

	case "[", "pgup":
		a.switchPage(-1)
	case "]", "pgdown":
		a.switchPage(1)

	case "t":
		a.cursor = a.clampToWindow(a.today)
		a.year, a.half = pageOf(a.cursor)

	case "enter":
		a.entering = true
		a.entryErr = ""
		ti := textinput.New()
		ti.Placeholder = "0.00"
		ti.CharLimit = 16
		ti.Width = 20
		if amount, ok := a.ledger[model.DateKey(a.cursor)]; ok {
			ti.SetValue(strconv.FormatFloat(amount, 'f', -1, 64))
		}
		ti.Focus()
		a.entry = ti
		return a, textinput.Blink

	case "d":
		if _, ok := a.ledger[model.DateKey(a.cursor)]; ok {
			if err := a.store.SetDeposit(a.cursor, 0); err != nil {
				a.statusMsg = "save failed: " + err.Error()
				return a, nil
			}
			a.statusMsg = "deposit removed"
			return a, loadSnapshotCmd(a.store)
		}

	case "s":
		a.formVals = settingsFormValuesFrom(a.settings)
		a.settingsForm = newSettingsForm(&a.formVals)
		if a.width > 0 {
			a.settingsForm = a.settingsForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.settingsForm.Init()
	}

	return a, nil
}

// moveCursor shifts the cursor by days, clamped to the deposit window,
// flipping the page when the cursor leaves it.
func (a *App) moveCursor(days int) {
	a.cursor = a.clampToWindow(a.cursor.AddDate(0, 0, days))
	a.year, a.half = pageOf(a.cursor)
	a.statusMsg = ""
}

// switchPage moves to the adjacent half-year if it overlaps the window.
func (a *App) switchPage(dir int) {
	year, half := a.year, a.half
	half += dir
	if half < 1 {
		year, half = year-1, 2
	}
	if half > 2 {
		year, half = year+1, 1
	}
	if !a.pageIntersectsWindow(year, half) {
		return
	}
	a.year, a.half = year, half

	first, last := pageRange(year, half)
	if a.cursor.Before(first) {
		a.cursor = a.clampToWindow(first)
	}
	if a.cursor.After(last) {
		a.cursor = a.clampToWindow(last)
	}
	a.statusMsg = ""
}

func (a App) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.entering = false
		a.entryErr = ""
		return a, nil

	case "enter":
		raw := strings.TrimSpace(a.entry.Value())
		if raw == "" {
			a.entering = false
			return a, nil
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			a.entryErr = "enter a non-negative number"
			return a, nil
		}
		if amount > 0 {
			existing := a.ledger[model.DateKey(a.cursor)]
			remaining := engine.Remaining(a.settings, a.ledger) + existing
			if remaining <= 0 {
				a.entryErr = "contract amount already fulfilled"
				return a, nil
			}
			if amount > remaining {
				a.entryErr = fmt.Sprintf("exceeds remaining %s", cli.FormatAmount(remaining))
				return a, nil
			}
		}
		if err := a.store.SetDeposit(a.cursor, amount); err != nil {
			a.entryErr = "save failed: " + err.Error()
			return a, nil
		}
		a.entering = false
		a.entryErr = ""
		if amount == 0 {
			a.statusMsg = "deposit removed"
		} else {
			a.statusMsg = "saved " + cli.FormatAmount(amount)
		}
		return a, loadSnapshotCmd(a.store)
	}

	var cmd tea.Cmd
	a.entry, cmd = a.entry.Update(msg)
	return a, cmd
}

func (a App) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.settingsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.settingsForm = f
	}

	if a.settingsForm.State == huh.StateCompleted {
		settings, err := a.formVals.toSettings(a.settings)
		if err != nil {
			// Per-field validators catch this before completion
			a.statusMsg = err.Error()
			a.settingsForm = nil
			return a, nil
		}
		if err := a.store.SaveSettings(settings); err != nil {
			a.statusMsg = "save failed: " + err.Error()
			a.settingsForm = nil
			return a, nil
		}
		a.settingsForm = nil
		a.statusMsg = "contract saved"
		// Recenter on today within the new window once the reload lands
		a.cursor = time.Time{}
		return a, loadSnapshotCmd(a.store)
	}

	if a.settingsForm.State == huh.StateAborted {
		a.settingsForm = nil
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols), need at least %d.\n", a.width, minTerminalWidth)
	}

	if !a.loaded {
		return "\n  Loading..."
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render("Error: "+a.loadErr.Error()) + "\n\n  Press q to quit."
	}

	if a.settingsForm != nil {
		return a.settingsForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewCalendar()
}

func (a App) viewHelp() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	keys := lipgloss.NewStyle().Foreground(t.Accent)

	lines := []struct{ key, desc string }{
		{"h/j/k/l, arrows", "move between days"},
		{"[ / ]", "previous / next half-year"},
		{"t", "jump to today"},
		{"enter", "enter or edit the deposit on the selected day"},
		{"d", "remove the deposit on the selected day"},
		{"s", "edit contract settings"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keys.Render(fmt.Sprintf("%-16s", l.key)),
			label.Render(l.desc)))
	}
	b.WriteString("\n")
	b.WriteString(label.Render("  Press any key to close."))
	return b.String()
}

func (a App) viewCalendar() string {
	t := theme.Active
	totals := engine.Totals(a.settings, a.ledger, a.today)
	rate := engine.EffectiveRate(a.settings, a.today)

	title := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true).
		Render(fmt.Sprintf("  fincal  H%d %d", a.half, a.year))

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Deposited", Value: cli.FormatAmount(totals.Fact), Color: t.Green},
		{Label: "Remaining", Value: cli.FormatAmount(totals.Remaining), Color: t.Orange},
		{Label: "Interest", Value: cli.FormatAmount(totals.Interest), Color: t.Blue},
		{Label: "Rate", Value: cli.FormatPercent(rate), Color: t.TextPrimary},
	}, a.width)

	// Two rows of three month cards
	firstMonth := time.January
	if a.half == 2 {
		firstMonth = time.July
	}
	widths := components.LayoutRow(a.width, 3)
	var rows []string
	for row := 0; row < 2; row++ {
		var cards []string
		for col := 0; col < 3; col++ {
			month := firstMonth + time.Month(row*3+col)
			cards = append(cards, components.MonthCard(a.monthData(month), widths[col]))
		}
		rows = append(rows, components.CardRow(cards))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(metrics)
	b.WriteString("\n")
	b.WriteString(rows[0])
	b.WriteString("\n")
	b.WriteString(rows[1])
	b.WriteString("\n")

	if a.entering {
		prompt := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("  Deposit on %s: ", a.cursor.Format(model.DateLayout)))
		b.WriteString(prompt + a.entry.View() + "\n")
		if a.entryErr != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render("  " + a.entryErr))
			b.WriteString("\n")
		}
	}

	b.WriteString(components.RenderStatusBar(a.width, a.statusMsg))
	return b.String()
}

// monthData assembles the render state for one month of the visible page.
func (a App) monthData(month time.Month) components.MonthData {
	md := components.MonthData{Year: a.year, Month: month}

	accrual := engine.AccrualDate(a.settings, a.year, month)
	first := time.Date(a.year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	prefix := model.MonthKey(a.year, month)

	for day := 1; day <= days; day++ {
		date := time.Date(a.year, month, day, 0, 0, 0, 0, time.UTC)
		switch {
		case date.Before(a.settings.StartDate) || date.After(a.lastDepositDay()):
			md.States[day] = components.DayOutside
		case a.ledger[fmt.Sprintf("%s-%02d", prefix, day)] > 0:
			md.States[day] = components.DayDeposit
		case date.Equal(accrual):
			md.States[day] = components.DayAccrual
		default:
			md.States[day] = components.DayNormal
		}
	}

	if a.cursor.Year() == a.year && a.cursor.Month() == month {
		md.Cursor = a.cursor.Day()
	}

	sum := engine.Summary(a.settings, a.ledger, a.year, month, a.today)
	md.Footer = fmt.Sprintf("plan %s  fact %s",
		cli.FormatNumber(sum.Plan), cli.FormatNumber(sum.Fact))

	return md
}
