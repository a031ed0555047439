package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/prompt"

	"github.com/spf13/cobra"
)

var flagBudgetPrompt bool

var budgetCmd = &cobra.Command{
	Use:   "budget [value]",
	Short: "Show or set the monthly income/budget",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().BoolVar(&flagBudgetPrompt, "prompt", false, "Enter the value interactively")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	label := cfg.BudgetLabel()
	sym := cfg.Display.CurrencySymbol

	switch {
	case len(args) == 1:
		v, err := expense.ParseAmount(args[0])
		if err != nil {
			return err
		}
		if err := store.SaveBudget(v); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s saved: %s\n", label, cli.FormatMoney(v, sym))
		return nil

	case flagBudgetPrompt:
		v, err := prompt.Budget(cmd.Context(), label)
		if err != nil {
			return err
		}
		if err := store.SaveBudget(v); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s saved: %s\n", label, cli.FormatMoney(v, sym))
		return nil
	}

	v, found, err := store.LoadBudget()
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "%s: not set %s\n", label, cli.Muted("(run `spent budget <value>`)"))
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", label, cli.FormatMoney(v, sym))
	return nil
}
