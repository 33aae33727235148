package cmd

import (
	"fmt"
	"sort"
	"time"

	"fincal/internal/cli"
	"fincal/internal/engine"
	"fincal/internal/model"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Monthly payment plan for the contract period",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	settings, ledger, err := loadSnapshot(s)
	if err != nil {
		return err
	}

	plans := engine.MonthlyPlans(settings, ledger)
	if len(plans) == 0 {
		fmt.Println("\n  No plan months in the contract period.")
		return nil
	}

	keys := make([]string, 0, len(plans))
	for k := range plans {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY PLAN"))
	fmt.Println()

	var planTotal, factTotal float64
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		t, err := time.Parse(model.MonthLayout, key)
		if err != nil {
			continue
		}
		plan := plans[key]
		fact := ledger.MonthTotal(t.Year(), t.Month())
		planTotal += plan
		factTotal += fact

		rows = append(rows, []string{
			cli.FormatMonth(t.Year(), t.Month()),
			cli.FormatNumber(plan),
			cli.FormatNumber(fact),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatNumber(planTotal),
		cli.FormatNumber(factTotal),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Plan", "Fact"},
		Rows:    rows,
	}))

	return nil
}
