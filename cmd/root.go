package cmd

import (
	"fmt"
	"os"
	"time"

	"fincal/internal/cli"
	"fincal/internal/config"
	"fincal/internal/model"
	"fincal/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagToday string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "fincal",
	Short: "Savings contract planner",
	Long:  "Track deposits against a savings contract: monthly plans, daily-compounded interest, and fulfillment summaries.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the ledger database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Override the current date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")

	cfg, _ := config.Load()
	cli.SetCurrency(cfg.Appearance.Currency)
}

// dbPath resolves the database location from the flag or config.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	cfg, _ := config.Load()
	return config.DBPath(cfg)
}

// openStore opens the ledger database shared by all commands.
func openStore() (*store.Store, error) {
	s, err := store.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}
	return s, nil
}

// loadSnapshot reads the contract settings and the full deposit ledger.
func loadSnapshot(s *store.Store) (model.ContractSettings, model.Ledger, error) {
	settings, err := s.Settings()
	if err != nil {
		return model.ContractSettings{}, nil, fmt.Errorf("loading settings: %w", err)
	}
	ledger, err := s.AllDeposits()
	if err != nil {
		return model.ContractSettings{}, nil, fmt.Errorf("loading deposits: %w", err)
	}
	return settings, ledger, nil
}

// today returns the effective current date, honoring --today.
func today() (time.Time, error) {
	if flagToday == "" {
		return model.DateOnly(time.Now()), nil
	}
	t, err := time.Parse(model.DateLayout, flagToday)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today value %q (want YYYY-MM-DD)", flagToday)
	}
	return t, nil
}

// parseDate parses a YYYY-MM-DD argument.
func parseDate(arg string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t, nil
}

// parseMonth parses a YYYY-MM argument.
func parseMonth(arg string) (int, time.Month, error) {
	t, err := time.Parse(model.MonthLayout, arg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", arg)
	}
	return t.Year(), t.Month(), nil
}
