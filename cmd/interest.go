package cmd

import (
	"fmt"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"

	"github.com/spf13/cobra"
)

var flagInterestTo string

var interestCmd = &cobra.Command{
	Use:   "interest [YYYY-MM]",
	Short: "Accrued interest, per accrual month or total to date",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInterest,
}

func init() {
	interestCmd.Flags().StringVar(&flagInterestTo, "to", "", "Accumulate through this date instead of today (YYYY-MM-DD)")
	rootCmd.AddCommand(interestCmd)
}

func runInterest(_ *cobra.Command, args []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	upTo := now
	if flagInterestTo != "" {
		upTo, err = parseDate(flagInterestTo)
		if err != nil {
			return err
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, ledger, err := loadSnapshot(s)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		year, month, err := parseMonth(args[0])
		if err != nil {
			return err
		}
		interest := engine.MonthlyInterest(settings, ledger, year, month, now)
		accrual := engine.AccrualDate(settings, year, month)

		fmt.Println()
		fmt.Printf("  Accrual date: %s\n", cli.FormatDate(accrual))
		fmt.Printf("  Interest:     %s\n", cli.FormatAmount(interest))
		fmt.Println()
		return nil
	}

	// No month given: show every accrual month through the cutoff plus
	// the total.
	fmt.Println()
	fmt.Println(cli.RenderTitle("ACCRUED INTEREST"))
	fmt.Println()

	rows := make([][]string, 0)
	var total float64
	start := settings.StartDate
	for m := 1; ; m++ {
		monthStart := time.Date(start.Year(), start.Month()+time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		if monthStart.After(upTo) {
			break
		}
		interest := engine.MonthlyInterest(settings, ledger, monthStart.Year(), monthStart.Month(), now)
		total += interest
		rows = append(rows, []string{
			cli.FormatMonth(monthStart.Year(), monthStart.Month()),
			cli.FormatNumber(interest),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No accrual months yet.")
		fmt.Println()
		return nil
	}

	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatNumber(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Interest"},
		Rows:    rows,
	}))
	return nil
}
