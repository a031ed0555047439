package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/ledger"
)

// testEnv points config and data at temp dirs and pins the clock to
// 20 May 2024, which leaves 11 days in the month.
func testEnv(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvCurrency, "")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())

	prev := now
	now = func() time.Time { return time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
	return dataDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagDataDir, flagQuiet, flagLogLevel, flagNoColor = "", false, "warn", false
	flagAddName, flagAddAmount, flagAddCategory = "", "", ""
	flagListLimit = 0
	flagBudgetPrompt = false
	flagExportDB = "spent.db"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddThenSummary(t *testing.T) {
	dataDir := testEnv(t)

	out, err := execute(t, "budget", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Income saved: $2,000.00")

	out, err = execute(t, "add", "--name", "Coffee", "--amount", "4.50", "--category", "food")
	require.NoError(t, err)
	logPath := filepath.Join(dataDir, "expenses.csv")
	assert.Contains(t, out, "Saving expense: <Expense: Coffee, Food, $4.50> to "+logPath)

	_, err = execute(t, "add", "--name", "Rent", "--amount", "1200", "--category", "Home")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "Coffee,4.5,Food\nRent,1200,Home\n", string(data))

	out, err = execute(t, "summary")
	require.NoError(t, err)
	for _, want := range []string{
		"ALL EXPENSES AS OF MAY 20, 2024",
		"Expenses By Category",
		"🍔 Food", "$4.50",
		"🏠 Home", "$1,200.00",
		"$1,204.50",
		"$795.50",
		"11 days",
		"Budget Per Day: $72.32",
	} {
		assert.Contains(t, out, want)
	}

	rootOut, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, out, rootOut, "bare spent prints the summary")
}

func TestSummary_FirstRunNonInteractive(t *testing.T) {
	dataDir := testEnv(t)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses logged yet")
	assert.Contains(t, out, "Budget Per Day: $0.00")

	_, err = os.Stat(filepath.Join(dataDir, "income.txt"))
	assert.True(t, os.IsNotExist(err), "a read-only run must not create the budget file")
}

func TestBudget_ShowTwiceStaysUnset(t *testing.T) {
	dataDir := testEnv(t)

	for range 2 {
		out, err := execute(t, "budget")
		require.NoError(t, err)
		assert.Contains(t, out, "Monthly Income: not set")
	}

	_, err := execute(t, "export", "--db", filepath.Join(t.TempDir(), "spent.db"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dataDir, "income.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestSummary_CorruptBudget(t *testing.T) {
	dataDir := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "income.txt"), []byte("plenty\n"), 0o600))

	_, err := execute(t)
	assert.ErrorIs(t, err, ledger.ErrCorrupt)
}

func TestSummary_CorruptLog(t *testing.T) {
	dataDir := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "income.txt"), []byte("100\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "expenses.csv"), []byte("Coffee,4.50,Food\nbroken\n"), 0o600))

	_, err := execute(t, "summary")
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrCorrupt)
	assert.Contains(t, err.Error(), ":2:")
}

func TestAdd_RejectsBadFlags(t *testing.T) {
	dataDir := testEnv(t)
	_, err := execute(t, "budget", "100")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{"negative amount", []string{"add", "--name", "x", "--amount", "-3", "--category", "Food"}},
		{"not a number", []string{"add", "--name", "x", "--amount", "ten", "--category", "Food"}},
		{"unknown category", []string{"add", "--name", "x", "--amount", "3", "--category", "Snacks"}},
		{"comma in name", []string{"add", "--name", "a,b", "--amount", "3", "--category", "Fun"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, expense.ErrInvalid)
		})
	}

	_, err = os.Stat(filepath.Join(dataDir, "expenses.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing was appended")
}

func TestList(t *testing.T) {
	testEnv(t)
	for _, args := range [][]string{
		{"add", "--name", "Coffee", "--amount", "4.50", "--category", "Food"},
		{"add", "--name", "Rent", "--amount", "1200", "--category", "Home"},
		{"add", "--name", "Movie", "--amount", "15", "--category", "Fun"},
	} {
		_, err := execute(t, args...)
		require.NoError(t, err)
	}

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Expenses (3 of 3)")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "$1,219.50")

	out, err = execute(t, "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Expenses (1 of 3)")
	assert.Contains(t, out, "Movie")
	assert.NotContains(t, out, "Coffee")
}

func TestList_Empty(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses logged yet")
}

func TestBudget_ShowAndSet(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Income: not set")

	_, err = execute(t, "budget", "1500.5")
	require.NoError(t, err)

	out, err = execute(t, "budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Income: $1,500.50")

	_, err = execute(t, "budget", "-1")
	assert.ErrorIs(t, err, expense.ErrInvalid)
}

func TestBudget_LabelFollowsConfig(t *testing.T) {
	testEnv(t)
	cfg := config.DefaultConfig()
	cfg.Budget.Kind = config.KindBudget
	cfg.Display.CurrencySymbol = "€"
	require.NoError(t, config.Save(cfg))

	out, err := execute(t, "budget", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget saved: €300.00")
}

func TestCategories(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "categories")
	require.NoError(t, err)
	for _, c := range expense.Categories() {
		assert.Contains(t, out, c.Label())
	}
}

func TestConfig(t *testing.T) {
	dataDir := testEnv(t)
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, filepath.Join(dataDir, "expenses.csv"))
	assert.Contains(t, out, "income (Monthly Income)")
}

func TestDataDirFlagBeatsEnv(t *testing.T) {
	testEnv(t)
	flagDir := t.TempDir()

	_, err := execute(t, "--data-dir", flagDir, "add", "--name", "Tea", "--amount", "2", "--category", "Food")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(flagDir, "expenses.csv"))
	assert.NoError(t, err)
}

func TestExport(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "add", "--name", "Coffee", "--amount", "4.50", "--category", "Food")
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "snap.db")
	out, err := execute(t, "export", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 expenses to "+dbPath)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestBadLogLevel(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "--log-level", "loud", "categories")
	assert.Error(t, err)
}

func TestApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, applySetup(&cfg, setupValues{kind: config.KindBudget, theme: "tokyo-night", currency: "£"}))
	assert.Equal(t, config.KindBudget, cfg.Budget.Kind)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.Equal(t, "£", cfg.Display.CurrencySymbol)

	require.NoError(t, applySetup(&cfg, setupValues{kind: config.KindIncome, theme: "nope"}))
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.Equal(t, "£", cfg.Display.CurrencySymbol, "blank currency keeps the old one")

	assert.Error(t, applySetup(&cfg, setupValues{kind: "allowance"}))
}

func TestLoadSetupConfig_IgnoresEnv(t *testing.T) {
	testEnv(t)
	t.Setenv(config.EnvCurrency, "€")

	cfg := config.DefaultConfig()
	cfg.Display.CurrencySymbol = "£"
	require.NoError(t, config.Save(cfg))

	got := loadSetupConfig()
	assert.Empty(t, got.General.DataDir, "env data dir must not reach config.toml")
	assert.Equal(t, "£", got.Display.CurrencySymbol)

	require.NoError(t, applySetup(&got, setupValues{kind: got.Budget.Kind, theme: got.Appearance.Theme}))
	require.NoError(t, config.Save(got))

	onDisk, err := config.LoadFile(config.ConfigPath())
	require.NoError(t, err)
	assert.Empty(t, onDisk.General.DataDir)
	assert.Equal(t, "£", onDisk.Display.CurrencySymbol)
}

func TestLoadSetupConfig_BrokenFileFallsBack(t *testing.T) {
	testEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(config.ConfigPath()), 0o755))
	require.NoError(t, os.WriteFile(config.ConfigPath(), []byte("not = [toml"), 0o600))

	assert.Equal(t, config.DefaultConfig(), loadSetupConfig())
}

func TestSaveSetupBudget(t *testing.T) {
	dataDir := testEnv(t)

	var out bytes.Buffer
	assert.ErrorIs(t, saveSetupBudget(&out, "1e1100000"), expense.ErrInvalid)
	_, err := os.Stat(filepath.Join(dataDir, "income.txt"))
	assert.True(t, os.IsNotExist(err), "a rejected amount writes nothing")

	require.NoError(t, saveSetupBudget(&out, "2500"))
	data, err := os.ReadFile(filepath.Join(dataDir, "income.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2500\n", string(data))
	assert.Contains(t, out.String(), "Monthly Income saved to")
}

func TestSummary_ShareBars(t *testing.T) {
	dataDir := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "income.txt"), []byte("100\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "expenses.csv"), []byte("Rent,75,Home\nCoffee,25,Food\n"), 0o600))

	out, err := execute(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, strings.Repeat("█", shareBarWidth*3/4))
	assert.Contains(t, out, "75.0%")
}
