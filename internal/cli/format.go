// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// currency is the symbol appended to formatted amounts.
// Set once at startup from the config.
var currency = "₽"

// SetCurrency overrides the currency symbol used by FormatAmount.
func SetCurrency(symbol string) {
	if symbol != "" {
		currency = symbol
	}
}

// FormatAmount formats a money amount with comma separators and two
// decimal places. e.g., 1234567.5 -> "1,234,567.50 ₽"
func FormatAmount(v float64) string {
	return FormatNumber(v) + " " + currency
}

// FormatNumber formats a float with comma separators and two decimals,
// without a currency symbol.
func FormatNumber(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	whole := int64(v)
	frac := int64(math.Round((v - float64(whole)) * 100))
	if frac >= 100 {
		whole++
		frac -= 100
	}

	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := fmt.Sprintf("%s.%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercent formats an annual rate as a percentage string.
// e.g., 16.5 -> "16.50%"
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// FormatMonth returns a "January 2024" style label.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// FormatDate renders a date in the display layout used across the CLI.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
