package tui

import (
	"testing"
	"time"

	"fincal/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func testApp(t *testing.T) App {
	t.Helper()
	a := App{}
	a.settings = model.ContractSettings{
		StartDate:      mustDate(t, "2024-03-15"),
		EndDate:        mustDate(t, "2025-03-15"),
		ContractAmount: 120000,
	}
	a.ledger = model.Ledger{}
	a.loaded = true
	return a
}

func TestPageOf(t *testing.T) {
	tests := []struct {
		date string
		year int
		half int
	}{
		{"2024-01-01", 2024, 1},
		{"2024-06-30", 2024, 1},
		{"2024-07-01", 2024, 2},
		{"2024-12-31", 2024, 2},
	}
	for _, tt := range tests {
		y, h := pageOf(mustDate(t, tt.date))
		if y != tt.year || h != tt.half {
			t.Errorf("pageOf(%s) = %d H%d, want %d H%d", tt.date, y, h, tt.year, tt.half)
		}
	}
}

func TestPageRange(t *testing.T) {
	first, last := pageRange(2024, 2)
	if got := first.Format(model.DateLayout); got != "2024-07-01" {
		t.Errorf("first = %s", got)
	}
	if got := last.Format(model.DateLayout); got != "2024-12-31" {
		t.Errorf("last = %s", got)
	}
}

func TestClampToWindow(t *testing.T) {
	a := testApp(t)

	if got := a.clampToWindow(mustDate(t, "2024-01-01")); !got.Equal(a.settings.StartDate) {
		t.Errorf("before start clamps to start, got %s", got.Format(model.DateLayout))
	}
	// The closing date itself takes no deposits
	if got := a.clampToWindow(mustDate(t, "2025-03-15")); got.Format(model.DateLayout) != "2025-03-14" {
		t.Errorf("after window clamps to last deposit day, got %s", got.Format(model.DateLayout))
	}
	mid := mustDate(t, "2024-08-01")
	if got := a.clampToWindow(mid); !got.Equal(mid) {
		t.Errorf("in-window date unchanged, got %s", got.Format(model.DateLayout))
	}
}

func TestSwitchPageBounds(t *testing.T) {
	a := testApp(t)
	a.cursor = mustDate(t, "2024-03-15")
	a.year, a.half = 2024, 1

	// Before the contract there is nothing to show
	a.switchPage(-1)
	if a.year != 2024 || a.half != 1 {
		t.Errorf("switch before window moved to %d H%d", a.year, a.half)
	}

	a.switchPage(1)
	if a.year != 2024 || a.half != 2 {
		t.Errorf("forward switch got %d H%d", a.year, a.half)
	}

	a.switchPage(1)
	if a.year != 2025 || a.half != 1 {
		t.Errorf("year rollover got %d H%d", a.year, a.half)
	}

	// H2 2025 starts after the window ends
	a.switchPage(1)
	if a.year != 2025 || a.half != 1 {
		t.Errorf("switch past window moved to %d H%d", a.year, a.half)
	}
}

func TestSwitchPagePullsCursorIn(t *testing.T) {
	a := testApp(t)
	a.cursor = mustDate(t, "2024-03-15")
	a.year, a.half = 2024, 1

	a.switchPage(1)
	if a.cursor.Before(mustDate(t, "2024-07-01")) {
		t.Errorf("cursor left behind at %s", a.cursor.Format(model.DateLayout))
	}
}

func TestMoveCursorFlipsPage(t *testing.T) {
	a := testApp(t)
	a.cursor = mustDate(t, "2024-06-30")
	a.year, a.half = 2024, 1

	a.moveCursor(1)
	if a.year != 2024 || a.half != 2 {
		t.Errorf("page after move = %d H%d", a.year, a.half)
	}
	if got := a.cursor.Format(model.DateLayout); got != "2024-07-01" {
		t.Errorf("cursor = %s", got)
	}
}

func TestMoveCursorClamped(t *testing.T) {
	a := testApp(t)
	a.cursor = a.settings.StartDate
	a.year, a.half = 2024, 1

	a.moveCursor(-7)
	if !a.cursor.Equal(a.settings.StartDate) {
		t.Errorf("cursor moved before start: %s", a.cursor.Format(model.DateLayout))
	}
}

func TestSettingsFormValuesRoundtrip(t *testing.T) {
	a := testApp(t)
	a.settings.InitialRate = 16.5
	a.settings.RateHistory = []model.RateChange{{Date: "01.06.2024", Rate: 18}}

	vals := settingsFormValuesFrom(a.settings)
	got, err := vals.toSettings(a.settings)
	if err != nil {
		t.Fatalf("toSettings: %v", err)
	}
	if !got.StartDate.Equal(a.settings.StartDate) || !got.EndDate.Equal(a.settings.EndDate) {
		t.Errorf("dates changed in roundtrip")
	}
	if got.ContractAmount != 120000 || got.InitialRate != 16.5 {
		t.Errorf("amounts changed: %+v", got)
	}
	if len(got.RateHistory) != 1 {
		t.Errorf("rate history dropped")
	}
}

func TestSettingsFormValuesRejectsBadInput(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		name string
		vals settingsFormValues
	}{
		{"end before start", settingsFormValues{start: "2024-03-15", end: "2024-01-01", amount: "1000", rate: "5"}},
		{"zero amount", settingsFormValues{start: "2024-03-15", end: "2025-03-15", amount: "0", rate: "5"}},
		{"rate over 100", settingsFormValues{start: "2024-03-15", end: "2025-03-15", amount: "1000", rate: "150"}},
		{"garbage date", settingsFormValues{start: "soon", end: "2025-03-15", amount: "1000", rate: "5"}},
	}
	for _, tt := range tests {
		if _, err := tt.vals.toSettings(a.settings); err == nil {
			t.Errorf("%s: want error", tt.name)
		}
	}
}
