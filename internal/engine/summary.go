package engine

import (
	"math"
	"time"

	"fincal/internal/model"
)

// Summary bundles the plan, fact, remaining and interest figures for one
// month.
func Summary(s model.ContractSettings, ledger model.Ledger, year int, month time.Month, today time.Time) model.MonthlySummary {
	plan := PlanFor(s, ledger, year, month)
	fact := ledger.MonthTotal(year, month)
	return model.MonthlySummary{
		Year:      year,
		Month:     month,
		Plan:      plan,
		Fact:      fact,
		Remaining: plan - fact,
		Interest:  MonthlyInterest(s, ledger, year, month, today),
	}
}

// HalfYear aggregates plan and fact over one half of a year (months 1-6
// or 7-12).
func HalfYear(s model.ContractSettings, ledger model.Ledger, year, half int, today time.Time) model.HalfYearSummary {
	startMonth := time.January
	if half == 2 {
		startMonth = time.July
	}

	out := model.HalfYearSummary{Year: year, Half: half}
	for m := startMonth; m < startMonth+6; m++ {
		ms := Summary(s, ledger, year, m, today)
		out.Plan += ms.Plan
		out.Fact += ms.Fact
	}
	out.Remaining = out.Plan - out.Fact
	return out
}

// Remaining returns the principal still to be deposited, ignoring
// interest and never going negative.
func Remaining(s model.ContractSettings, ledger model.Ledger) float64 {
	return math.Max(0, s.ContractAmount-ledger.Total())
}

// Totals computes the whole-contract aggregates for the status panel.
func Totals(s model.ContractSettings, ledger model.Ledger, today time.Time) model.ContractTotals {
	fact := ledger.Total()
	interest := TotalInterest(s, ledger, today, today)
	return model.ContractTotals{
		Plan:         s.ContractAmount,
		Fact:         fact,
		Remaining:    math.Max(0, s.ContractAmount-fact),
		Interest:     interest,
		WithInterest: fact + interest,
	}
}
