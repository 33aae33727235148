package model

import "time"

// MonthlySummary bundles the derived figures for one calendar month.
type MonthlySummary struct {
	Year      int
	Month     time.Month
	Plan      float64 // adjusted target deposit
	Fact      float64 // actual deposits
	Remaining float64 // Plan - Fact
	Interest  float64 // interest accrued in the month's target period
}

// HalfYearSummary aggregates plan and fact over months 1-6 or 7-12.
type HalfYearSummary struct {
	Year      int
	Half      int // 1 or 2
	Plan      float64
	Fact      float64
	Remaining float64
}

// ContractTotals holds the whole-contract aggregates shown on the
// status panel.
type ContractTotals struct {
	Plan         float64 // the contract amount
	Fact         float64 // all deposits made
	Remaining    float64 // principal still to deposit, never negative
	Interest     float64 // accrued interest to date
	WithInterest float64 // Fact + Interest
}
