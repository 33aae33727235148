package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"

	"github.com/spf13/cobra"
)

var flagHalf int

var summaryCmd = &cobra.Command{
	Use:   "summary [year|YYYY-MM]",
	Short: "Plan/fact summary rows for a year, half-year or single month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&flagHalf, "half", 0, "Limit to one half of the year (1 or 2)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	now, err := today()
	if err != nil {
		return err
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

	// A YYYY-MM argument selects a single month panel.
	if len(args) == 1 && strings.Contains(args[0], "-") {
		year, month, err := parseMonth(args[0])
		if err != nil {
			return err
		}
		sum := engine.Summary(settings, ledger, year, month, now)

		fmt.Println()
		fmt.Printf("  %s\n", cli.FormatMonth(year, month))
		fmt.Printf("  Plan:      %s\n", cli.FormatAmount(sum.Plan))
		fmt.Printf("  Fact:      %s\n", cli.FormatAmount(sum.Fact))
		fmt.Printf("  Remaining: %s\n", cli.FormatAmount(sum.Remaining))
		fmt.Printf("  Interest:  %s (accrual %s)\n",
			cli.FormatAmount(sum.Interest),
			cli.FormatDate(engine.AccrualDate(settings, year, month)))
		fmt.Println()
		return nil
	}

	year := now.Year()
	if len(args) == 1 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
	}
	if flagHalf != 0 && flagHalf != 1 && flagHalf != 2 {
		return fmt.Errorf("--half must be 1 or 2")
	}

	firstMonth, lastMonth := time.January, time.December
	switch flagHalf {
	case 1:
		lastMonth = time.June
	case 2:
		firstMonth = time.July
	}

	title := fmt.Sprintf("SUMMARY %d", year)
	if flagHalf != 0 {
		title = fmt.Sprintf("SUMMARY H%d %d", flagHalf, year)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	var planTotal, factTotal, interestTotal float64
	rows := make([][]string, 0, 14)
	for month := firstMonth; month <= lastMonth; month++ {
		sum := engine.Summary(settings, ledger, year, month, now)
		planTotal += sum.Plan
		factTotal += sum.Fact
		interestTotal += sum.Interest
		rows = append(rows, []string{
			cli.FormatMonth(year, month),
			cli.FormatNumber(sum.Plan),
			cli.FormatNumber(sum.Fact),
			cli.FormatNumber(sum.Remaining),
			cli.FormatNumber(sum.Interest),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatNumber(planTotal),
		cli.FormatNumber(factTotal),
		cli.FormatNumber(planTotal - factTotal),
		cli.FormatNumber(interestTotal),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Plan", "Fact", "Remaining", "Interest"},
		Rows:    rows,
	}))

	return nil
}
