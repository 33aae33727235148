package store

import (
	"path/filepath"
	"testing"
	"time"

	"fincal/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fincal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustDate(t *testing.T, str string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, str)
	if err != nil {
		t.Fatalf("parse date %q: %v", str, err)
	}
	return d
}

func TestDeposits_UpsertAndDelete(t *testing.T) {
	s := openTestStore(t)
	day := mustDate(t, "2024-05-10")

	if err := s.SetDeposit(day, 150.50); err != nil {
		t.Fatalf("SetDeposit: %v", err)
	}
	if got, err := s.Deposit(day); err != nil || got != 150.50 {
		t.Fatalf("Deposit = %.2f, %v; want 150.50", got, err)
	}

	// Upsert replaces, never duplicates.
	if err := s.SetDeposit(day, 200); err != nil {
		t.Fatalf("SetDeposit overwrite: %v", err)
	}
	ledger, err := s.AllDeposits()
	if err != nil {
		t.Fatalf("AllDeposits: %v", err)
	}
	if len(ledger) != 1 || ledger["2024-05-10"] != 200 {
		t.Fatalf("ledger = %v, want single entry 2024-05-10 -> 200", ledger)
	}

	// A zero amount removes the record instead of storing a zero.
	if err := s.SetDeposit(day, 0); err != nil {
		t.Fatalf("SetDeposit zero: %v", err)
	}
	if got, err := s.Deposit(day); err != nil || got != 0 {
		t.Fatalf("Deposit after delete = %.2f, %v; want 0", got, err)
	}
	ledger, _ = s.AllDeposits()
	if len(ledger) != 0 {
		t.Fatalf("ledger after delete = %v, want empty", ledger)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := model.ContractSettings{
		StartDate:   mustDate(t, "2024-01-15"),
		EndDate:     mustDate(t, "2026-01-15"),
		InitialRate: 9.75,
		RateHistory: []model.RateChange{
			{Date: "01.03.2024", Rate: 10.5},
			{Date: "15.08.2024", Rate: 8.25},
		},
		ContractAmount: 48000,
	}
	if err := s.SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	out, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if !out.StartDate.Equal(in.StartDate) || !out.EndDate.Equal(in.EndDate) {
		t.Errorf("dates = %s..%s, want %s..%s",
			out.StartDate, out.EndDate, in.StartDate, in.EndDate)
	}
	if out.InitialRate != in.InitialRate || out.ContractAmount != in.ContractAmount {
		t.Errorf("scalars = (%.2f, %.2f), want (%.2f, %.2f)",
			out.InitialRate, out.ContractAmount, in.InitialRate, in.ContractAmount)
	}
	if len(out.RateHistory) != len(in.RateHistory) {
		t.Fatalf("rate history has %d entries, want %d", len(out.RateHistory), len(in.RateHistory))
	}
	for i := range in.RateHistory {
		if out.RateHistory[i] != in.RateHistory[i] {
			t.Errorf("rate history[%d] = %+v, want %+v", i, out.RateHistory[i], in.RateHistory[i])
		}
	}
}

func TestSettings_WholesaleReplacement(t *testing.T) {
	s := openTestStore(t)

	first := model.ContractSettings{
		StartDate:      mustDate(t, "2024-01-01"),
		EndDate:        mustDate(t, "2025-01-01"),
		ContractAmount: 1000,
	}
	second := first
	second.ContractAmount = 2000

	if err := s.SaveSettings(first); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if err := s.SaveSettings(second); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM contract_settings").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("contract_settings holds %d rows, want exactly 1", count)
	}

	out, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if out.ContractAmount != 2000 {
		t.Fatalf("ContractAmount = %.2f, want the replacement 2000", out.ContractAmount)
	}
}

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings on empty db: %v", err)
	}

	today := model.DateOnly(time.Now())
	if !got.StartDate.Equal(today) {
		t.Errorf("default StartDate = %s, want today %s", got.StartDate, today)
	}
	if !got.EndDate.Equal(today.AddDate(1, 0, 0)) {
		t.Errorf("default EndDate = %s, want today+1y", got.EndDate)
	}
	if got.InitialRate != 0 || got.ContractAmount != 0 || len(got.RateHistory) != 0 {
		t.Errorf("defaults = %+v, want zero rate, amount and history", got)
	}
}
