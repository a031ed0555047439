package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/ledger"
	"github.com/theirongolddev/spent/internal/prompt"
	"github.com/theirongolddev/spent/internal/report"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending by category and what is left per day",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}

	budget, err := resolveBudget(cmd.Context(), cmd.OutOrStdout(), cfg, store)
	if err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), cfg, store, budget)
}

// resolveBudget reads the budget file. A missing file or corrupt content
// triggers a prompt when stdin is a terminal.
func resolveBudget(ctx context.Context, w io.Writer, cfg config.Config, store *ledger.Store) (decimal.Decimal, error) {
	label := cfg.BudgetLabel()

	v, found, err := store.LoadBudget()
	switch {
	case errors.Is(err, ledger.ErrCorrupt):
		log.Warn().Err(err).Msg("invalid budget data")
		if !prompt.Interactive() {
			return decimal.Zero, err
		}
		fmt.Fprintln(w, cli.Warn(fmt.Sprintf("Invalid %s data found. Please enter again.", strings.ToLower(label))))
	case err != nil:
		return decimal.Zero, err
	case found:
		return v, nil
	case !prompt.Interactive():
		log.Info().Str("path", store.BudgetPath()).Msg("no budget set, using 0; run `spent budget <value>`")
		return v, nil
	}

	v, err = prompt.Budget(ctx, label)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	if err := store.SaveBudget(v); err != nil {
		return decimal.Zero, err
	}
	fmt.Fprintf(w, "%s saved: %s\n", label, cli.FormatMoney(v, cfg.Display.CurrencySymbol))
	return v, nil
}

func printSummary(w io.Writer, cfg config.Config, store *ledger.Store, budget decimal.Decimal) error {
	records, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	renderSummary(w, cfg, report.Summarize(records, budget, now()))
	return nil
}

const shareBarWidth = 12

func renderSummary(w io.Writer, cfg config.Config, s report.Summary) {
	sym := cfg.Display.CurrencySymbol

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("SPENT  ALL EXPENSES AS OF "+strings.ToUpper(s.Today.Format("Jan 2, 2006"))))
	fmt.Fprintln(w)

	if s.Count == 0 {
		fmt.Fprintln(w, "  "+cli.Muted("No expenses logged yet."))
		fmt.Fprintln(w)
	} else {
		rows := make([][]string, 0, s.Categories.Len())
		for c, sum := range s.Categories.All() {
			share := 0.0
			if s.Total.IsPositive() {
				share = sum.Div(s.Total).InexactFloat64()
			}
			rows = append(rows, []string{
				c.Label(),
				cli.FormatMoney(sum, sym),
				cli.FormatPercent(share),
				cli.RenderHorizontalBar(share, 1, shareBarWidth),
			})
		}
		fmt.Fprint(w, cli.RenderTable(cli.Table{
			Title:   "Expenses By Category",
			Headers: []string{"Category", "Amount", "Share", ""},
			Rows:    rows,
		}))
		fmt.Fprintln(w)
	}

	remaining := cli.FormatMoney(s.Remaining, sym)
	if s.Overspent {
		remaining = cli.Alert(remaining)
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Spent", cli.FormatMoney(s.Total, sym)},
			{cfg.BudgetLabel(), cli.FormatMoney(s.Budget, sym)},
			{"Budget Remaining", remaining},
			{"---"},
			{"Days Left", cli.FormatDays(s.DaysLeft)},
		},
	}))

	if s.Budget.IsPositive() {
		fmt.Fprintf(w, "\n  %s\n", cli.RenderProgressBar(s.UsedFraction, 30))
	}
	fmt.Fprintf(w, "\n  %s\n\n", cli.Highlight("Budget Per Day: "+cli.FormatMoney(s.DailyAllowance, sym)))
}
