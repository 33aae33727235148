package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fincal/internal/cli"
	"fincal/internal/config"
	"fincal/internal/model"

	"github.com/spf13/cobra"
)

// maxContractAmount guards against fat-fingered amounts.
const maxContractAmount = 1_000_000_000_000

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, err := s.Settings()
	if err != nil {
		return err
	}
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to fincal!")
	fmt.Println()

	// 1. Contract period
	fmt.Println("  1. Contract start date (YYYY-MM-DD)")
	fmt.Printf("     Current: %s\n", settings.StartDate.Format(model.DateLayout))
	fmt.Print("     > ")
	if v := readLine(reader); v != "" {
		d, err := parseDate(v)
		if err != nil {
			return err
		}
		settings.StartDate = d
	}
	fmt.Println()

	fmt.Println("  2. Contract end date (YYYY-MM-DD)")
	fmt.Printf("     Current: %s\n", settings.EndDate.Format(model.DateLayout))
	fmt.Print("     > ")
	if v := readLine(reader); v != "" {
		d, err := parseDate(v)
		if err != nil {
			return err
		}
		settings.EndDate = d
	}
	if !settings.EndDate.After(settings.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	fmt.Println()

	// 2. Contract amount
	fmt.Println("  3. Contract amount")
	fmt.Printf("     Current: %s\n", cli.FormatAmount(settings.ContractAmount))
	fmt.Print("     > ")
	if v := readLine(reader); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", v)
		}
		settings.ContractAmount = amount
	}
	if settings.ContractAmount <= 0 || settings.ContractAmount > maxContractAmount {
		return fmt.Errorf("contract amount must be positive and at most %.0f", float64(maxContractAmount))
	}
	fmt.Println()

	// 3. Initial rate
	fmt.Println("  4. Initial annual rate, percent")
	fmt.Printf("     Current: %s\n", cli.FormatPercent(settings.InitialRate))
	fmt.Print("     > ")
	if v := readLine(reader); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid rate %q", v)
		}
		settings.InitialRate = rate
	}
	if settings.InitialRate < 0 || settings.InitialRate > 100 {
		return fmt.Errorf("rate must be between 0 and 100")
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	switch readLine(reader) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("saving contract settings: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Contract saved to %s\n", dbPath())
	fmt.Printf("  Config saved to %s\n", config.Path())
	fmt.Println("  Run `fincal setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
