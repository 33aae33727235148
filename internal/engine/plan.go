package engine

import (
	"math"
	"time"

	"fincal/internal/model"
)

// MonthCount returns the number of whole calendar months from the start
// month to the end month, floored at 1 so a sub-month contract still
// yields a divisor.
func MonthCount(s model.ContractSettings) int {
	months := (s.EndDate.Year()-s.StartDate.Year())*12 +
		int(s.EndDate.Month()) - int(s.StartDate.Month())
	if months < 1 {
		return 1
	}
	return months
}

// MonthlyPlans derives the self-correcting monthly target schedule: the
// contract amount split evenly across the months from the start month
// (inclusive) to the end month (exclusive), with each month's share
// reduced by any cumulative over-payment, floored at zero. The closing
// month never receives an entry; its target is 0 by convention.
func MonthlyPlans(s model.ContractSettings, ledger model.Ledger) map[string]float64 {
	plans := make(map[string]float64)
	if s.ContractAmount == 0 {
		return plans
	}

	base := s.ContractAmount / float64(MonthCount(s))

	cur := time.Date(s.StartDate.Year(), s.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	index := 0
	cumulativeFact := 0.0

	for cur.Before(s.EndDate) {
		if cur.Year() == s.EndDate.Year() && cur.Month() == s.EndDate.Month() {
			cur = cur.AddDate(0, 1, 0)
			continue
		}

		index++
		cumulativeFact += ledger.MonthTotal(cur.Year(), cur.Month())

		plan := base
		if target := base * float64(index); cumulativeFact > target {
			plan = math.Max(0, base-(cumulativeFact-target))
		}

		plans[model.MonthKey(cur.Year(), cur.Month())] = plan
		cur = cur.AddDate(0, 1, 0)
	}

	return plans
}

// PlanFor returns the adjusted target for one month. Months outside the
// schedule, including the closing month, report 0.
func PlanFor(s model.ContractSettings, ledger model.Ledger, year int, month time.Month) float64 {
	return MonthlyPlans(s, ledger)[model.MonthKey(year, month)]
}
