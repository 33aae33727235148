package engine

import (
	"math"
	"testing"
	"time"

	"fincal/internal/model"
)

func TestSummary_Month(t *testing.T) {
	s := yearContract(t, 12000)
	ledger := model.Ledger{
		"2024-03-05": 400,
		"2024-03-20": 100,
		"2024-04-01": 999, // other month, must not count
	}
	today := mustDate(t, "2024-12-31")

	ms := Summary(s, ledger, 2024, time.March, today)
	if ms.Plan != 1000 {
		t.Errorf("Plan = %.2f, want 1000", ms.Plan)
	}
	if ms.Fact != 500 {
		t.Errorf("Fact = %.2f, want 500", ms.Fact)
	}
	if ms.Remaining != 500 {
		t.Errorf("Remaining = %.2f, want 500", ms.Remaining)
	}
	if ms.Interest != 0 {
		t.Errorf("Interest = %f, want 0 at zero rate", ms.Interest)
	}
}

func TestHalfYear_SumsSixMonths(t *testing.T) {
	s := yearContract(t, 12000)
	ledger := model.Ledger{
		"2024-01-10": 1000,
		"2024-05-10": 300,
		"2024-08-10": 700, // second half, excluded from H1
	}
	today := mustDate(t, "2024-12-31")

	h1 := HalfYear(s, ledger, 2024, 1, today)
	if h1.Fact != 1300 {
		t.Errorf("H1 Fact = %.2f, want 1300", h1.Fact)
	}
	if h1.Plan != 6000 {
		t.Errorf("H1 Plan = %.2f, want 6000", h1.Plan)
	}
	if math.Abs(h1.Remaining-(h1.Plan-h1.Fact)) > 1e-9 {
		t.Errorf("H1 Remaining = %.2f, want Plan-Fact = %.2f", h1.Remaining, h1.Plan-h1.Fact)
	}

	h2 := HalfYear(s, ledger, 2024, 2, today)
	if h2.Fact != 700 {
		t.Errorf("H2 Fact = %.2f, want 700", h2.Fact)
	}
}

func TestRemaining_ClampedAtZero(t *testing.T) {
	s := yearContract(t, 1000)
	ledger := model.Ledger{"2024-01-02": 1500}
	if got := Remaining(s, ledger); got != 0 {
		t.Fatalf("Remaining = %.2f, want 0 when overpaid", got)
	}

	ledger = model.Ledger{"2024-01-02": 400}
	if got := Remaining(s, ledger); got != 600 {
		t.Fatalf("Remaining = %.2f, want 600", got)
	}
}

func TestTotals(t *testing.T) {
	s := leapYearContract(t)
	ledger := model.Ledger{"2024-01-01": 1000}
	today := mustDate(t, "2024-03-01")

	totals := Totals(s, ledger, today)
	if totals.Plan != 12000 {
		t.Errorf("Plan = %.2f, want the contract amount 12000", totals.Plan)
	}
	if totals.Fact != 1000 {
		t.Errorf("Fact = %.2f, want 1000", totals.Fact)
	}
	if totals.Remaining != 11000 {
		t.Errorf("Remaining = %.2f, want 11000", totals.Remaining)
	}

	wantInterest := TotalInterest(s, ledger, today, today)
	if totals.Interest != wantInterest {
		t.Errorf("Interest = %.9f, want %.9f", totals.Interest, wantInterest)
	}
	if math.Abs(totals.WithInterest-(totals.Fact+totals.Interest)) > 1e-9 {
		t.Errorf("WithInterest = %.9f, want Fact+Interest", totals.WithInterest)
	}
}
