// Package engine implements the contract amortization and interest
// calculations. Every function is a pure computation over an explicit
// snapshot of the contract settings and the deposit ledger; nothing here
// reads the clock or touches storage.
package engine

import (
	"sort"
	"time"

	"fincal/internal/model"
)

type ratePoint struct {
	at   time.Time
	rate float64
}

// rateTimeline parses and sorts the rate history ascending by effective
// date. The sort is stable, so entries sharing a date keep their listed
// order and the last one wins during the scan.
func rateTimeline(history []model.RateChange) []ratePoint {
	points := make([]ratePoint, 0, len(history))
	for _, rc := range history {
		at, err := rc.EffectiveDate()
		if err != nil {
			continue
		}
		points = append(points, ratePoint{at: at, rate: rc.Rate})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].at.Before(points[j].at)
	})
	return points
}

// EffectiveRate returns the annual rate (percent) in force on the given
// day: the latest history entry dated at or before it, or the initial
// rate when no entry qualifies.
func EffectiveRate(s model.ContractSettings, day time.Time) float64 {
	rate := s.InitialRate
	for _, p := range rateTimeline(s.RateHistory) {
		if p.at.After(day) {
			break
		}
		rate = p.rate
	}
	return rate
}
