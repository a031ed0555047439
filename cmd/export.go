package cmd

import (
	"fmt"

	"github.com/theirongolddev/spent/internal/export"

	"github.com/spf13/cobra"
)

var flagExportDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a SQLite snapshot of the expense log",
	Long: "Write the expense log and budget to a SQLite database for ad-hoc\n" +
		"queries. Each run replaces the previous snapshot; the CSV log stays\n" +
		"the only source of truth.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDB, "db", "spent.db", "SQLite database path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	_, store, err := openLedger()
	if err != nil {
		return err
	}

	records, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	budget, _, err := store.LoadBudget()
	if err != nil {
		return err
	}

	if err := export.ToSQLite(cmd.Context(), flagExportDB, records, budget); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Exported %d expenses to %s\n", len(records), flagExportDB)
	return nil
}
