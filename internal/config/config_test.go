package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvCurrency, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvCurrency, "")

	cfg := DefaultConfig()
	cfg.Budget.Kind = KindBudget
	cfg.Display.CurrencySymbol = "€"
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, "Budget", got.BudgetLabel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDataDir, "/srv/spent")
	t.Setenv(EnvCurrency, "£")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/spent", cfg.DataDir(""))
	assert.Equal(t, "£", cfg.Display.CurrencySymbol)
	assert.Equal(t, "/tmp/flag", cfg.DataDir("/tmp/flag"), "flag beats env")
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[general\nledger_file = 1"},
		{"unknown kind", "[budget]\nkind = \"allowance\"\n"},
		{"empty ledger file", "[general]\nledger_file = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\ncurrency_symbol = \"kr \"\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kr ", cfg.Display.CurrencySymbol)
	assert.Equal(t, "expenses.csv", cfg.General.LedgerFile)
	assert.Equal(t, KindIncome, cfg.Budget.Kind)
	assert.Equal(t, "Monthly Income", cfg.BudgetLabel())
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/data", "expenses.csv"), cfg.LedgerPath("/data"))
	assert.Equal(t, filepath.Join("/data", "income.txt"), cfg.BudgetPath("/data"))

	cfg.General.LedgerFile = "/elsewhere/log.csv"
	assert.Equal(t, "/elsewhere/log.csv", cfg.LedgerPath("/data"))
}

func TestDefaultDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, filepath.Join("/xdg/data", "spent"), DefaultDataDir())

	cfg := DefaultConfig()
	assert.Equal(t, DefaultDataDir(), cfg.DataDir(""))
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadEnv())
}

func TestLoadEnv_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvCurrency+"=¥\n"), 0o600))
	t.Chdir(dir)
	t.Setenv(EnvCurrency, "") // registers cleanup for the variable godotenv sets
	require.NoError(t, os.Unsetenv(EnvCurrency))

	require.NoError(t, LoadEnv())
	assert.Equal(t, "¥", os.Getenv(EnvCurrency))
}
