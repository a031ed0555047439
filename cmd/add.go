package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/prompt"

	"github.com/spf13/cobra"
)

var (
	flagAddName     string
	flagAddAmount   string
	flagAddCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an expense, then show the summary",
	Long: "Log an expense. Values not given as flags are asked for interactively.\n" +
		"Categories: Food, Home, Work, Fun, Misc.",
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Expense name")
	addCmd.Flags().StringVar(&flagAddAmount, "amount", "", "Amount spent, e.g. 12.50")
	addCmd.Flags().StringVar(&flagAddCategory, "category", "", "Category (Food, Home, Work, Fun, Misc)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	budget, err := resolveBudget(cmd.Context(), out, cfg, store)
	if err != nil {
		return err
	}

	e, err := expenseFromFlags(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Saving expense: %s to %s\n", e, store.LogPath())
	if err := store.Append(e); err != nil {
		return fmt.Errorf("saving expense: %w", err)
	}

	return printSummary(out, cfg, store, budget)
}

// expenseFromFlags builds the expense from flags, opening the form for
// anything missing. Flag values are validated before the form opens.
func expenseFromFlags(cmd *cobra.Command) (expense.Expense, error) {
	vals := prompt.ExpenseValues{Name: flagAddName, Amount: flagAddAmount}
	if flagAddCategory != "" {
		c, err := expense.ParseCategory(flagAddCategory)
		if err != nil {
			return expense.Expense{}, err
		}
		vals.Category = c
	}

	if flagAddName != "" && flagAddAmount != "" && vals.Category.Valid() {
		return vals.Expense()
	}

	if flagAddAmount != "" {
		if _, err := expense.ParseAmount(flagAddAmount); err != nil {
			return expense.Expense{}, err
		}
	}
	if err := expense.ValidateName(flagAddName); err != nil {
		return expense.Expense{}, err
	}
	return prompt.Expense(cmd.Context(), &vals)
}
