// Package cmd implements the spent CLI commands.
package cmd

import (
	"os"
	"time"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/ledger"
	"github.com/theirongolddev/spent/internal/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagQuiet    bool
	flagLogLevel string
	flagNoColor  bool

	// colorOff is flagNoColor or NO_COLOR, resolved before each command.
	colorOff bool
)

// now is the clock used for "today"; tests replace it.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "spent",
	Short: "Monthly expense logger",
	Long: "Log expenses into a plain CSV file and see what is left of your\n" +
		"monthly budget, split across the days remaining in the month.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the expense log and budget file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func initRuntime(cmd *cobra.Command, _ []string) error {
	colorOff = flagNoColor || os.Getenv("NO_COLOR") != ""
	if err := logging.Setup(cmd.ErrOrStderr(), flagLogLevel, flagQuiet, colorOff); err != nil {
		return err
	}
	if colorOff {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return config.LoadEnv()
}

// openLedger loads config and opens the store it points at.
func openLedger() (config.Config, *ledger.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}

	dir := cfg.DataDir(flagDataDir)
	store := ledger.New(cfg.LedgerPath(dir), cfg.BudgetPath(dir))
	log.Debug().
		Str("log", store.LogPath()).
		Str("budget", store.BudgetPath()).
		Msg("opened ledger")
	return cfg, store, nil
}
