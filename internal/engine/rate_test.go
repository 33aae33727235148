package engine

import (
	"testing"
	"time"

	"fincal/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestEffectiveRate_Timeline(t *testing.T) {
	s := model.ContractSettings{
		InitialRate: 3.0,
		// Deliberately out of order: the engine must sort by date.
		RateHistory: []model.RateChange{
			{Date: "01.06.2023", Rate: 7.0},
			{Date: "01.01.2023", Rate: 5.0},
		},
	}

	cases := []struct {
		day  string
		want float64
	}{
		{"2022-12-31", 3.0},
		{"2023-01-01", 5.0},
		{"2023-03-01", 5.0},
		{"2023-06-01", 7.0},
		{"2023-12-31", 7.0},
	}

	for _, tc := range cases {
		if got := EffectiveRate(s, mustDate(t, tc.day)); got != tc.want {
			t.Errorf("EffectiveRate(%s) = %.2f, want %.2f", tc.day, got, tc.want)
		}
	}
}

func TestEffectiveRate_EmptyHistory(t *testing.T) {
	s := model.ContractSettings{InitialRate: 4.25}
	if got := EffectiveRate(s, mustDate(t, "2030-01-01")); got != 4.25 {
		t.Fatalf("EffectiveRate with empty history = %.2f, want initial 4.25", got)
	}
}

func TestEffectiveRate_SameDateLastListedWins(t *testing.T) {
	s := model.ContractSettings{
		InitialRate: 1.0,
		RateHistory: []model.RateChange{
			{Date: "15.04.2024", Rate: 6.0},
			{Date: "15.04.2024", Rate: 8.0},
		},
	}
	if got := EffectiveRate(s, mustDate(t, "2024-04-15")); got != 8.0 {
		t.Fatalf("same-date duplicate rate = %.2f, want last-listed 8.0", got)
	}
}

func TestEffectiveRate_MalformedEntrySkipped(t *testing.T) {
	s := model.ContractSettings{
		InitialRate: 2.0,
		RateHistory: []model.RateChange{
			{Date: "not-a-date", Rate: 99.0},
			{Date: "01.02.2024", Rate: 5.5},
		},
	}
	if got := EffectiveRate(s, mustDate(t, "2024-03-01")); got != 5.5 {
		t.Fatalf("EffectiveRate = %.2f, want 5.5 (malformed entry ignored)", got)
	}
}
