package tui

import (
	"fmt"
	"strconv"
	"time"

	"fincal/internal/model"

	"github.com/charmbracelet/huh"
)

// maxContractAmount guards against fat-fingered amounts.
const maxContractAmount = 1_000_000_000_000

// settingsFormValues holds the raw string inputs for the contract form.
type settingsFormValues struct {
	start  string
	end    string
	amount string
	rate   string
}

func settingsFormValuesFrom(s model.ContractSettings) settingsFormValues {
	return settingsFormValues{
		start:  s.StartDate.Format(model.DateLayout),
		end:    s.EndDate.Format(model.DateLayout),
		amount: strconv.FormatFloat(s.ContractAmount, 'f', -1, 64),
		rate:   strconv.FormatFloat(s.InitialRate, 'f', -1, 64),
	}
}

// toSettings parses the form values, keeping the rate history intact.
func (v settingsFormValues) toSettings(prev model.ContractSettings) (model.ContractSettings, error) {
	start, err := time.Parse(model.DateLayout, v.start)
	if err != nil {
		return prev, fmt.Errorf("invalid start date %q", v.start)
	}
	end, err := time.Parse(model.DateLayout, v.end)
	if err != nil {
		return prev, fmt.Errorf("invalid end date %q", v.end)
	}
	if !end.After(start) {
		return prev, fmt.Errorf("end date must be after start date")
	}
	amount, err := strconv.ParseFloat(v.amount, 64)
	if err != nil || amount <= 0 || amount > maxContractAmount {
		return prev, fmt.Errorf("invalid contract amount %q", v.amount)
	}
	rate, err := strconv.ParseFloat(v.rate, 64)
	if err != nil || rate < 0 || rate > 100 {
		return prev, fmt.Errorf("invalid rate %q", v.rate)
	}

	out := prev
	out.StartDate = start
	out.EndDate = end
	out.ContractAmount = amount
	out.InitialRate = rate
	return out, nil
}

func validDate(s string) error {
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

// newSettingsForm builds the contract settings form.
func newSettingsForm(vals *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description("First day of the contract (YYYY-MM-DD)").
				Validate(validDate).
				Value(&vals.start),
			huh.NewInput().
				Title("End date").
				Description("Contract closing date (YYYY-MM-DD)").
				Validate(validDate).
				Value(&vals.end),
			huh.NewInput().
				Title("Contract amount").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 || v > maxContractAmount {
						return fmt.Errorf("want a positive number")
					}
					return nil
				}).
				Value(&vals.amount),
			huh.NewInput().
				Title("Initial annual rate, %").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 || v > 100 {
						return fmt.Errorf("want a number between 0 and 100")
					}
					return nil
				}).
				Value(&vals.rate),
		),
	)
}
