package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"fincal/internal/cli"
	"fincal/internal/engine"
	"fincal/internal/model"

	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Manage deposits in the ledger",
}

var depositAddCmd = &cobra.Command{
	Use:   "add DATE AMOUNT",
	Short: "Record or overwrite a deposit for a date",
	Args:  cobra.ExactArgs(2),
	RunE:  runDepositAdd,
}

var depositRmCmd = &cobra.Command{
	Use:   "rm DATE",
	Short: "Remove the deposit on a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepositRm,
}

var depositListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded deposits",
	RunE:  runDepositList,
}

func init() {
	depositCmd.AddCommand(depositAddCmd)
	depositCmd.AddCommand(depositRmCmd)
	depositCmd.AddCommand(depositListCmd)
	rootCmd.AddCommand(depositCmd)
}

func runDepositAdd(_ *cobra.Command, args []string) error {
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
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

	// Deposits are accepted from the start date up to the day before
	// the contract closes.
	lastDay := settings.EndDate.AddDate(0, 0, -1)
	if date.Before(settings.StartDate) || date.After(lastDay) {
		return fmt.Errorf("date %s is outside the contract period %s — %s",
			args[0], cli.FormatDate(settings.StartDate), cli.FormatDate(lastDay))
	}

	if amount > 0 {
		// The new amount replaces any existing deposit on the date, so
		// the limit excludes the old value.
		key := model.DateKey(date)
		existing := ledger[key]
		remaining := engine.Remaining(settings, ledger) + existing
		if remaining <= 0 {
			return fmt.Errorf("contract amount already fulfilled, no further deposits accepted")
		}
		if amount > remaining {
			return fmt.Errorf("amount exceeds remaining contract amount (%s)", cli.FormatAmount(remaining))
		}
	}

	if err := s.SetDeposit(date, amount); err != nil {
		return fmt.Errorf("saving deposit: %w", err)
	}

	if !flagQuiet {
		if amount == 0 {
			fmt.Printf("  Removed deposit on %s\n", args[0])
		} else {
			fmt.Printf("  Recorded %s on %s\n", cli.FormatAmount(amount), args[0])
		}
	}
	return nil
}

func runDepositRm(_ *cobra.Command, args []string) error {
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SetDeposit(date, 0); err != nil {
		return fmt.Errorf("removing deposit: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Removed deposit on %s\n", args[0])
	}
	return nil
}

func runDepositList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ledger, err := s.AllDeposits()
	if err != nil {
		return err
	}
	if len(ledger) == 0 {
		fmt.Println("\n  No deposits recorded.")
		return nil
	}

	keys := make([]string, 0, len(ledger))
	for k := range ledger {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys)+2)
	for _, k := range keys {
		rows = append(rows, []string{k, cli.FormatNumber(ledger[k])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatNumber(ledger.Total())})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Amount"},
		Rows:    rows,
	}))
	return nil
}
