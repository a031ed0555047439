package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data directory: %s\n", cfg.DataDir(flagDataDir))
	fmt.Fprintf(out, "    Expense log:    %s\n", store.LogPath())
	fmt.Fprintf(out, "    Budget file:    %s\n", store.BudgetPath())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Budget]")
	fmt.Fprintf(out, "    Kind:  %s (%s)\n", cfg.Budget.Kind, cfg.BudgetLabel())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency symbol: %q\n", cfg.Display.CurrencySymbol)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `spent setup` to reconfigure.")
	return nil
}
