package engine

import (
	"math"
	"testing"
	"time"

	"fincal/internal/model"
)

// 36.6%/year in 2024 (a leap year) gives a daily rate of exactly
// 36.6/100/366 = 0.001, which keeps expectations easy to state.
func leapYearContract(t *testing.T) model.ContractSettings {
	t.Helper()
	return model.ContractSettings{
		StartDate:      mustDate(t, "2024-01-01"),
		EndDate:        mustDate(t, "2025-01-01"),
		InitialRate:    36.6,
		ContractAmount: 12000,
	}
}

func TestMonthlyInterest_ZeroDeposits(t *testing.T) {
	s := leapYearContract(t)
	today := mustDate(t, "2024-12-31")

	for m := time.January; m <= time.December; m++ {
		if got := MonthlyInterest(s, model.Ledger{}, 2024, m, today); got != 0 {
			t.Errorf("month %s interest = %f, want 0 with an empty ledger", m, got)
		}
	}
}

func TestMonthlyInterest_NoInterestOnDepositDay(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}

	// Simulation ends the day after the deposit: only the deposit day
	// itself ran, and that day earns nothing.
	got := MonthlyInterest(s, ledger, 2024, time.February, mustDate(t, "2024-01-02"))
	if got != 0 {
		t.Fatalf("interest on deposit day = %f, want 0", got)
	}

	// One more simulated day: the balance earns one daily increment.
	got = MonthlyInterest(s, ledger, 2024, time.February, mustDate(t, "2024-01-03"))
	want := 1000 * 36.6 / 100 / 366
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("interest after one day = %.9f, want %.9f", got, want)
	}
}

func TestMonthlyInterest_DailyCompounding(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}
	today := mustDate(t, "2024-03-01")

	// February's target period is [Jan 1, Feb 1). The deposit earns on
	// the 30 days Jan 2..Jan 31, compounding daily.
	daily := 36.6 / 100 / 366
	want := 1000 * (math.Pow(1+daily, 30) - 1)

	got := MonthlyInterest(s, ledger, 2024, time.February, today)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("February interest = %.9f, want %.9f", got, want)
	}
}

func TestMonthlyInterest_AccrualBeforeStart(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}

	// The start month's accrual date equals the start date itself.
	got := MonthlyInterest(s, ledger, 2024, time.January, mustDate(t, "2024-06-01"))
	if got != 0 {
		t.Fatalf("start-month interest = %f, want 0 (accrual not after start)", got)
	}
}

func TestAccrualDate_ClampsToMonthEnd(t *testing.T) {
	s := model.ContractSettings{
		StartDate: mustDate(t, "2024-01-31"),
		EndDate:   mustDate(t, "2026-01-31"),
	}

	cases := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2024, time.February, "2024-02-29"},
		{2025, time.February, "2025-02-28"},
		{2024, time.April, "2024-04-30"},
		{2024, time.March, "2024-03-31"},
	}
	for _, tc := range cases {
		got := AccrualDate(s, tc.year, tc.month)
		if model.DateKey(got) != tc.want {
			t.Errorf("AccrualDate(%d, %s) = %s, want %s", tc.year, tc.month, model.DateKey(got), tc.want)
		}
	}
}

func TestTotalInterest_SumsMonthlyResults(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{
		"2024-01-01": 1000,
		"2024-02-15": 500,
	}
	upTo := mustDate(t, "2024-03-15")

	want := MonthlyInterest(s, ledger, 2024, time.February, upTo) +
		MonthlyInterest(s, ledger, 2024, time.March, upTo)

	got := TotalInterest(s, ledger, upTo, upTo)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalInterest = %.9f, want sum of monthly results %.9f", got, want)
	}
}

func TestTotalInterest_BeforeStart(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}
	if got := TotalInterest(s, ledger, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-01")); got != 0 {
		t.Fatalf("TotalInterest up to the start date = %f, want 0", got)
	}
}

func TestBalanceOn(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}

	if got := BalanceOn(s, ledger, mustDate(t, "2023-12-31")); got != 0 {
		t.Fatalf("balance before start = %f, want 0", got)
	}
	if got := BalanceOn(s, ledger, mustDate(t, "2024-01-01")); got != 1000 {
		t.Fatalf("balance on deposit day = %f, want 1000 (no same-day interest)", got)
	}

	daily := 36.6 / 100 / 366
	want := 1000 * math.Pow(1+daily, 2)
	if got := BalanceOn(s, ledger, mustDate(t, "2024-01-03")); math.Abs(got-want) > 1e-9 {
		t.Fatalf("balance after two days = %.9f, want %.9f", got, want)
	}
}

func TestBalanceOn_ZeroRate(t *testing.T) {
	s := leapYearContract(t)
	s.InitialRate = 0
	ledger := model.Ledger{
		"2024-01-01": 1000,
		"2024-02-01": 250,
	}
	if got := BalanceOn(s, ledger, mustDate(t, "2024-06-01")); got != 1250 {
		t.Fatalf("zero-rate balance = %f, want plain deposit sum 1250", got)
	}
}
