package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"fincal/internal/engine"
	"fincal/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the contract, ledger and computed totals",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// exportDeposit is one dated ledger entry in the export document.
type exportDeposit struct {
	Date   string  `json:"date" yaml:"date"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// exportDoc is the full export document.
type exportDoc struct {
	Contract struct {
		StartDate   string             `json:"start_date" yaml:"start_date"`
		EndDate     string             `json:"end_date" yaml:"end_date"`
		Amount      float64            `json:"amount" yaml:"amount"`
		InitialRate float64            `json:"initial_rate" yaml:"initial_rate"`
		RateHistory []model.RateChange `json:"rate_history" yaml:"rate_history"`
	} `json:"contract" yaml:"contract"`
	Deposits []exportDeposit    `json:"deposits" yaml:"deposits"`
	Plans    map[string]float64 `json:"plans" yaml:"plans"`
	Totals   struct {
		Fact         float64 `json:"fact" yaml:"fact"`
		Remaining    float64 `json:"remaining" yaml:"remaining"`
		Interest     float64 `json:"interest" yaml:"interest"`
		WithInterest float64 `json:"with_interest" yaml:"with_interest"`
	} `json:"totals" yaml:"totals"`
}

func runExport(_ *cobra.Command, _ []string) error {
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

	var doc exportDoc
	doc.Contract.StartDate = settings.StartDate.Format(model.DateLayout)
	doc.Contract.EndDate = settings.EndDate.Format(model.DateLayout)
	doc.Contract.Amount = settings.ContractAmount
	doc.Contract.InitialRate = settings.InitialRate
	doc.Contract.RateHistory = settings.RateHistory
	if doc.Contract.RateHistory == nil {
		doc.Contract.RateHistory = []model.RateChange{}
	}

	keys := make([]string, 0, len(ledger))
	for k := range ledger {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	doc.Deposits = make([]exportDeposit, 0, len(keys))
	for _, k := range keys {
		doc.Deposits = append(doc.Deposits, exportDeposit{Date: k, Amount: ledger[k]})
	}

	doc.Plans = engine.MonthlyPlans(settings, ledger)

	totals := engine.Totals(settings, ledger, now)
	doc.Totals.Fact = totals.Fact
	doc.Totals.Remaining = totals.Remaining
	doc.Totals.Interest = totals.Interest
	doc.Totals.WithInterest = totals.WithInterest

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch flagExportFormat {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", flagExportFormat)
	}
}
