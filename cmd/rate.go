package cmd

import (
	"fmt"
	"strconv"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"
	"fincal/internal/model"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Manage the interest rate history",
}

var rateListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the rate history and the rate effective today",
	RunE:  runRateList,
}

var rateAddCmd = &cobra.Command{
	Use:   "add DATE RATE",
	Short: "Record a rate change effective from a date (DD.MM.YYYY)",
	Args:  cobra.ExactArgs(2),
	RunE:  runRateAdd,
}

var rateRmCmd = &cobra.Command{
	Use:   "rm INDEX",
	Short: "Remove a rate change by its list index",
	Args:  cobra.ExactArgs(1),
	RunE:  runRateRm,
}

func init() {
	rateCmd.AddCommand(rateListCmd)
	rateCmd.AddCommand(rateAddCmd)
	rateCmd.AddCommand(rateRmCmd)
	rootCmd.AddCommand(rateCmd)
}

func runRateList(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, err := s.Settings()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Initial rate:   %s\n", cli.FormatPercent(settings.InitialRate))
	fmt.Printf("  Effective rate: %s (on %s)\n",
		cli.FormatPercent(engine.EffectiveRate(settings, now)), cli.FormatDate(now))
	fmt.Println()

	if len(settings.RateHistory) == 0 {
		fmt.Println("  No rate changes recorded.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(settings.RateHistory))
	for i, rc := range settings.RateHistory {
		rows = append(rows, []string{strconv.Itoa(i + 1), rc.Date, cli.FormatPercent(rc.Rate)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "From", "Rate"},
		Rows:    rows,
	}))
	return nil
}

func runRateAdd(_ *cobra.Command, args []string) error {
	if _, err := time.Parse(model.RateDateLayout, args[0]); err != nil {
		return fmt.Errorf("invalid date %q (want DD.MM.YYYY)", args[0])
	}
	rate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q", args[1])
	}
	if rate < 0 || rate > 100 {
		return fmt.Errorf("rate must be between 0 and 100")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, err := s.Settings()
	if err != nil {
		return err
	}

	settings.RateHistory = append(settings.RateHistory, model.RateChange{
		Date: args[0],
		Rate: rate,
	})

	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Rate %s effective from %s\n", cli.FormatPercent(rate), args[0])
	}
	return nil
}

func runRateRm(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, err := s.Settings()
	if err != nil {
		return err
	}

	// Indexes match the 1-based numbering shown by `rate list`.
	if index < 1 || index > len(settings.RateHistory) {
		return fmt.Errorf("index %d out of range (history has %d entries)", index, len(settings.RateHistory))
	}
	removed := settings.RateHistory[index-1]
	settings.RateHistory = append(settings.RateHistory[:index-1], settings.RateHistory[index:]...)

	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Removed rate %s effective from %s\n", cli.FormatPercent(removed.Rate), removed.Date)
	}
	return nil
}
