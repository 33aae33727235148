package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1000, "1,000.00"},
		{1234567.5, "1,234,567.50"},
		{999.999, "1,000.00"},
		{-2500.25, "-2,500.25"},
		{100000000, "100,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	SetCurrency("₽")
	if got := FormatAmount(1500); got != "1,500.00 ₽" {
		t.Errorf("FormatAmount(1500) = %q", got)
	}
	SetCurrency("$")
	if got := FormatAmount(1500); got != "1,500.00 $" {
		t.Errorf("FormatAmount(1500) = %q", got)
	}
	SetCurrency("₽")
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(16.5); got != "16.50%" {
		t.Errorf("FormatPercent(16.5) = %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07.03.2024" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth(2024, time.January); got != "January 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
}
