// Package config loads spent settings from TOML, the environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Budget kinds. They only change how the scalar is labeled.
const (
	KindIncome = "income"
	KindBudget = "budget"
)

// Environment overrides, applied over the config file.
const (
	EnvDataDir  = "SPENT_DATA_DIR"
	EnvCurrency = "SPENT_CURRENCY"
)

// Config holds all spent configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig points at the data files.
type GeneralConfig struct {
	DataDir    string `toml:"data_dir,omitempty"`
	LedgerFile string `toml:"ledger_file"`
	BudgetFile string `toml:"budget_file"`
}

// BudgetConfig says whether the scalar is monthly income or a fixed budget.
type BudgetConfig struct {
	Kind string `toml:"kind"`
}

// DisplayConfig holds output formatting preferences.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LedgerFile: "expenses.csv",
			BudgetFile: "income.txt",
		},
		Budget:     BudgetConfig{Kind: KindIncome},
		Display:    DisplayConfig{CurrencySymbol: "$"},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spent")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spent")
}

// LoadEnv reads a .env file from the working directory if one exists.
// Variables already set in the process environment win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads one config file over the defaults, without env overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if sym := os.Getenv(EnvCurrency); sym != "" {
		cfg.Display.CurrencySymbol = sym
	}
}

// Validate checks fields that have a closed set of values.
func (c Config) Validate() error {
	switch c.Budget.Kind {
	case KindIncome, KindBudget:
	default:
		return fmt.Errorf("budget.kind must be %q or %q, got %q", KindIncome, KindBudget, c.Budget.Kind)
	}
	if c.General.LedgerFile == "" || c.General.BudgetFile == "" {
		return errors.New("general.ledger_file and general.budget_file must not be empty")
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes cfg to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	return f.Close()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DataDir resolves the data directory: the override (a command-line flag)
// first, then config or environment, then the XDG default.
func (c Config) DataDir(override string) string {
	switch {
	case override != "":
		return override
	case c.General.DataDir != "":
		return c.General.DataDir
	default:
		return DefaultDataDir()
	}
}

// LedgerPath returns the expense log path inside dataDir.
func (c Config) LedgerPath(dataDir string) string {
	return resolve(dataDir, c.General.LedgerFile)
}

// BudgetPath returns the budget file path inside dataDir.
func (c Config) BudgetPath(dataDir string) string {
	return resolve(dataDir, c.General.BudgetFile)
}

// BudgetLabel is the display name of the scalar.
func (c Config) BudgetLabel() string {
	if c.Budget.Kind == KindBudget {
		return "Budget"
	}
	return "Monthly Income"
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
