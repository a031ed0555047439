package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/prompt"
	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

type setupValues struct {
	kind     string
	budget   string
	theme    string
	currency string
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spent!").
				Description("Let's set up a few things."),
			huh.NewSelect[string]().
				Title("What should the monthly figure be?").
				Options(
					huh.NewOption("Monthly income", config.KindIncome),
					huh.NewOption("Fixed budget", config.KindBudget),
				).
				Value(&v.kind),
			huh.NewInput().
				Title("Amount for this month").
				Description("Leave blank to keep the current value.").
				Placeholder("2000.00").
				Value(&v.budget).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := expense.ParseAmount(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.currency),
		),
	)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg := loadSetupConfig()

	vals := setupValues{
		kind:     cfg.Budget.Kind,
		theme:    cfg.Appearance.Theme,
		currency: cfg.Display.CurrencySymbol,
	}
	form := newSetupForm(&vals).WithAccessible(!prompt.Interactive())
	if err := form.RunWithContext(cmd.Context()); err != nil {
		return err
	}

	if err := applySetup(&cfg, vals); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	if vals.budget != "" {
		if err := saveSetupBudget(out, vals.budget); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\n  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `spent setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}

// saveSetupBudget stores the budget where every other command reads it,
// env overrides included.
func saveSetupBudget(out io.Writer, raw string) error {
	v, err := expense.ParseAmount(raw)
	if err != nil {
		return err
	}
	cfg, store, err := openLedger()
	if err != nil {
		return err
	}
	if err := store.SaveBudget(v); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n  %s saved to %s\n", cfg.BudgetLabel(), store.BudgetPath())
	return nil
}

// loadSetupConfig reads config.toml without env overrides, so saving the
// result never copies SPENT_* values into the file.
func loadSetupConfig() config.Config {
	cfg, err := config.LoadFile(config.ConfigPath())
	if err != nil {
		// A broken config file is what setup is for.
		return config.DefaultConfig()
	}
	return cfg
}

func applySetup(cfg *config.Config, v setupValues) error {
	cfg.Budget.Kind = v.kind
	cfg.Appearance.Theme = theme.ByName(v.theme).Name
	if v.currency != "" {
		cfg.Display.CurrencySymbol = v.currency
	}
	return cfg.Validate()
}
