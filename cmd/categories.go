package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/expense"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List expense categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows := make([][]string, 0, len(expense.Categories()))
		for _, c := range expense.Categories() {
			rows = append(rows, []string{c.Label(), c.String()})
		}
		fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Stored As"},
			Rows:    rows,
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
