package cmd

import (
	"fmt"
	"strconv"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"
	"fincal/internal/model"
	"fincal/internal/tui/components"

	"github.com/spf13/cobra"
)

var flagCalendarDays bool

var calendarCmd = &cobra.Command{
	Use:   "calendar [year] [half]",
	Short: "Half-year view with per-month summaries",
	Long:  "Shows one half-year (Jan-Jun or Jul-Dec) with plan, fact, remaining and interest per month. Defaults to the half containing today.",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().BoolVar(&flagCalendarDays, "days", false, "List individual deposit days per month")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	year := now.Year()
	half := 1
	if now.Month() >= time.July {
		half = 2
	}

	if len(args) >= 1 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
	}
	if len(args) == 2 {
		half, err = strconv.Atoi(args[1])
		if err != nil || (half != 1 && half != 2) {
			return fmt.Errorf("invalid half %q (want 1 or 2)", args[1])
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("H%d %d", half, year)))
	fmt.Println()

	firstMonth := time.January
	if half == 2 {
		firstMonth = time.July
	}

	// Month grids, three per row
	widths := components.LayoutRow(78, 3)
	for row := 0; row < 2; row++ {
		cards := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			month := firstMonth + time.Month(row*3+col)
			cards = append(cards, components.MonthCard(monthGrid(settings, ledger, year, month, now), widths[col]))
		}
		fmt.Println(components.CardRow(cards))
	}
	fmt.Println()

	rows := make([][]string, 0, 7)
	for i := 0; i < 6; i++ {
		month := firstMonth + time.Month(i)
		sum := engine.Summary(settings, ledger, year, month, now)
		rows = append(rows, []string{
			cli.FormatMonth(year, month),
			cli.FormatNumber(sum.Plan),
			cli.FormatNumber(sum.Fact),
			cli.FormatNumber(sum.Remaining),
			cli.FormatNumber(sum.Interest),
		})
	}

	hy := engine.HalfYear(settings, ledger, year, half, now)
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatNumber(hy.Plan),
		cli.FormatNumber(hy.Fact),
		cli.FormatNumber(hy.Remaining),
		"",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Plan", "Fact", "Remaining", "Interest"},
		Rows:    rows,
	}))

	if flagCalendarDays {
		printDepositDays(ledger, year, firstMonth)
	}

	return nil
}

// monthGrid assembles the day states for one month block.
func monthGrid(settings model.ContractSettings, ledger model.Ledger, year int, month time.Month, now time.Time) components.MonthData {
	md := components.MonthData{Year: year, Month: month}

	accrual := engine.AccrualDate(settings, year, month)
	lastDay := settings.EndDate.AddDate(0, 0, -1)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	prefix := model.MonthKey(year, month)

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		switch {
		case date.Before(settings.StartDate) || date.After(lastDay):
			md.States[day] = components.DayOutside
		case ledger[fmt.Sprintf("%s-%02d", prefix, day)] > 0:
			md.States[day] = components.DayDeposit
		case date.Equal(accrual):
			md.States[day] = components.DayAccrual
		default:
			md.States[day] = components.DayNormal
		}
	}

	sum := engine.Summary(settings, ledger, year, month, now)
	md.Footer = fmt.Sprintf("plan %s  fact %s",
		cli.FormatNumber(sum.Plan), cli.FormatNumber(sum.Fact))

	return md
}

// printDepositDays lists every recorded deposit within the half-year.
func printDepositDays(ledger model.Ledger, year int, firstMonth time.Month) {
	fmt.Println()
	for i := 0; i < 6; i++ {
		month := firstMonth + time.Month(i)
		prefix := model.MonthKey(year, month)
		printed := false
		for day := 1; day <= 31; day++ {
			key := fmt.Sprintf("%s-%02d", prefix, day)
			amount, ok := ledger[key]
			if !ok || amount == 0 {
				continue
			}
			if !printed {
				fmt.Printf("  %s\n", cli.FormatMonth(year, month))
				printed = true
			}
			fmt.Printf("    %s  %s\n", key, cli.FormatAmount(amount))
		}
	}
	fmt.Println()
}
