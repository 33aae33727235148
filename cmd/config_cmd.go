// Package cmd implements the fincal CLI commands.
package cmd

import (
	"fmt"

	"fincal/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	fmt.Println("  Run `fincal setup` to reconfigure.")
	return nil
}
