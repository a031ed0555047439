package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/report"

	"github.com/spf13/cobra"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged expenses in the order they were added",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 0, "Only show the last N expenses")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	records, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "\n  No expenses logged yet.")
		return nil
	}

	first := 0
	if flagListLimit > 0 && flagListLimit < len(records) {
		first = len(records) - flagListLimit
	}

	sym := cfg.Display.CurrencySymbol
	rows := make([][]string, 0, len(records)-first+2)
	for _, e := range records[first:] {
		rows = append(rows, []string{
			e.Name(),
			e.Category().Label(),
			cli.FormatMoney(e.Amount(), sym),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", "", cli.FormatMoney(report.Total(records[first:]), sym)},
	)

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%s of %s)", cli.FormatNumber(int64(len(records)-first)), cli.FormatNumber(int64(len(records)))),
		Headers: []string{"Name", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}
