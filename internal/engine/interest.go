package engine

import (
	"time"

	"fincal/internal/model"
)

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// addMonthsClamped shifts a date by whole months, clamping the day to the
// target month's length instead of letting it overflow (Mar 31 - 1 month
// is Feb 28/29, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year, month := total/12, time.Month(total%12+1)
	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AccrualDate returns the interest accrual anchor for a month: the same
// day-of-month as the contract start, clamped to the month's last day
// when that day does not exist.
func AccrualDate(s model.ContractSettings, year int, month time.Month) time.Time {
	day := s.StartDate.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MonthlyInterest computes the interest accrued during one month's target
// period under daily compounding. The balance starts at zero on the
// contract start date and is simulated day by day: interest on the
// opening balance is credited first (and capitalized), then the day's
// deposit is added — so a deposit earns nothing on the day it is made.
// Days at or after the target period start contribute to the returned
// total; the simulation stops at the accrual date or today, whichever
// comes first.
func MonthlyInterest(s model.ContractSettings, ledger model.Ledger, year int, month time.Month, today time.Time) float64 {
	accrual := AccrualDate(s, year, month)
	if !accrual.After(s.StartDate) {
		return 0
	}

	periodStart := addMonthsClamped(accrual, -1)
	if periodStart.Before(s.StartDate) {
		periodStart = s.StartDate
	}

	simEnd := accrual
	if today := model.DateOnly(today); today.Before(simEnd) {
		simEnd = today
	}
	if !periodStart.Before(simEnd) {
		return 0
	}

	balance := 0.0
	periodInterest := 0.0

	for day := s.StartDate; day.Before(simEnd); day = day.AddDate(0, 0, 1) {
		if balance > 0 {
			daily := balance * EffectiveRate(s, day) / 100 / float64(daysInYear(day.Year()))
			balance += daily
			if !day.Before(periodStart) {
				periodInterest += daily
			}
		}
		if amount, ok := ledger[model.DateKey(day)]; ok {
			balance += amount
		}
	}

	return periodInterest
}

// TotalInterest sums the monthly interest over every month from one month
// after the contract start through the month containing upTo. It re-runs
// the daily simulation per month; recomputation keeps the figure correct
// after any ledger edit.
func TotalInterest(s model.ContractSettings, ledger model.Ledger, upTo, today time.Time) float64 {
	upTo = model.DateOnly(upTo)
	if !upTo.After(s.StartDate) {
		return 0
	}

	total := 0.0
	for cur := addMonthsClamped(s.StartDate, 1); ; cur = addMonthsClamped(cur, 1) {
		monthStart := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, time.UTC)
		if monthStart.After(upTo) {
			break
		}
		total += MonthlyInterest(s, ledger, cur.Year(), cur.Month(), today)
	}
	return total
}

// BalanceOn returns the account balance at the end of the given date:
// all deposits made through it plus capitalized daily interest. Before
// the contract start the balance is zero.
func BalanceOn(s model.ContractSettings, ledger model.Ledger, date time.Time) float64 {
	date = model.DateOnly(date)
	if date.Before(s.StartDate) {
		return 0
	}

	balance := 0.0
	for day := s.StartDate; !day.After(date); day = day.AddDate(0, 0, 1) {
		if balance > 0 {
			balance += balance * EffectiveRate(s, day) / 100 / float64(daysInYear(day.Year()))
		}
		if amount, ok := ledger[model.DateKey(day)]; ok {
			balance += amount
		}
	}
	return balance
}
