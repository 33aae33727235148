package cmd

import (
	"fmt"

	"fincal/internal/cli"
	"fincal/internal/engine"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Contract overview: terms, fulfillment, and accrued interest",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
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

	totals := engine.Totals(settings, ledger, now)
	rate := engine.EffectiveRate(settings, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CONTRACT STATUS"))
	fmt.Println()

	fmt.Printf("  Period:          %s — %s\n",
		cli.FormatDate(settings.StartDate), cli.FormatDate(settings.EndDate))
	fmt.Printf("  Contract amount: %s\n", cli.FormatAmount(settings.ContractAmount))
	fmt.Printf("  Current rate:    %s\n", cli.FormatPercent(rate))
	fmt.Println()

	fmt.Printf("  Deposited:       %s\n", cli.FormatAmount(totals.Fact))
	fmt.Printf("  Remaining:       %s\n", cli.FormatAmount(totals.Remaining))
	fmt.Printf("  Interest:        %s\n", cli.FormatAmount(totals.Interest))
	fmt.Printf("  With interest:   %s\n", cli.FormatAmount(totals.WithInterest))
	fmt.Println()

	fmt.Printf("  %s\n", cli.RenderProgressBar(totals.Fact, settings.ContractAmount, 40))
	fmt.Println()

	if totals.Remaining == 0 && settings.ContractAmount > 0 {
		fmt.Println("  Contract amount fulfilled.")
		fmt.Println()
	}

	return nil
}
