// Package model defines the core domain types shared across fincal.
package model

import (
	"strings"
	"time"
)

// Date layouts used throughout the app. Ledger dates and contract dates
// are stored as YYYY-MM-DD; rate history effective dates keep the
// DD.MM.YYYY form they are entered in. The two are never mixed.
const (
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
	RateDateLayout = "02.01.2006"
)

// RateChange is one revision in the contract's rate timeline.
type RateChange struct {
	Date string  `json:"date" yaml:"date"` // effective date, DD.MM.YYYY
	Rate float64 `json:"rate" yaml:"rate"` // annual rate, percent
}

// EffectiveDate parses the entry's effective date.
func (rc RateChange) EffectiveDate() (time.Time, error) {
	return time.Parse(RateDateLayout, rc.Date)
}

// ContractSettings is the single active contract record. It is replaced
// wholesale on save; there is never more than one current record.
type ContractSettings struct {
	StartDate      time.Time
	EndDate        time.Time
	InitialRate    float64
	RateHistory    []RateChange
	ContractAmount float64
}

// DefaultSettings returns the settings reported when no contract has been
// configured yet: a one-year window starting today, zero rate, zero amount.
func DefaultSettings(today time.Time) ContractSettings {
	today = DateOnly(today)
	return ContractSettings{
		StartDate: today,
		EndDate:   today.AddDate(1, 0, 0),
	}
}

// Ledger maps deposit dates (YYYY-MM-DD) to amounts. A missing key means
// no deposit that day; zero amounts are never stored.
type Ledger map[string]float64

// Total sums every deposit in the ledger.
func (l Ledger) Total() float64 {
	var total float64
	for _, amount := range l {
		total += amount
	}
	return total
}

// MonthTotal sums the deposits whose date falls in the given month,
// matched by the YYYY-MM key prefix.
func (l Ledger) MonthTotal(year int, month time.Month) float64 {
	prefix := MonthKey(year, month)
	var total float64
	for date, amount := range l {
		if strings.HasPrefix(date, prefix) {
			total += amount
		}
	}
	return total
}

// DateKey formats a time as a ledger date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey formats a (year, month) pair as a plan/summary key.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}

// DateOnly strips the time-of-day and location, leaving a UTC midnight
// that compares and iterates cleanly at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
