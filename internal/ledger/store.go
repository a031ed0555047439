// Package ledger persists expense records to an append-only text log and the
// budget figure to a one-line file beside it.
package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/expense"
)

// Store owns the expense log and the budget file. It keeps no in-memory copy
// of either; every call goes to disk.
//
// A Store is not safe for concurrent writers. Appends use O_APPEND with one
// write per record, which keeps lines whole on local filesystems, but two
// processes appending at once have no defined ordering.
type Store struct {
	logPath    string
	budgetPath string
}

// New returns a Store over the given files. Neither file needs to exist yet.
func New(logPath, budgetPath string) *Store {
	return &Store{logPath: logPath, budgetPath: budgetPath}
}

// LogPath returns the path of the expense log.
func (s *Store) LogPath() string { return s.logPath }

// BudgetPath returns the path of the budget file.
func (s *Store) BudgetPath() string { return s.budgetPath }

// Append writes e to the end of the log, creating the file if needed.
func (s *Store) Append(e expense.Expense) error {
	if err := ensureDir(s.logPath); err != nil {
		return err
	}

	f, err := os.OpenFile(s.logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return &IOError{Op: "open", Path: s.logPath, Err: err}
	}

	if _, err := f.WriteString(FormatLine(e) + "\n"); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: s.logPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: s.logPath, Err: err}
	}

	log.Debug().Str("path", s.logPath).Stringer("expense", e).Msg("appended expense")
	return nil
}

// LoadAll reads every record in file order. A missing log yields an empty
// slice. The first malformed line aborts the read with a *CorruptError;
// lines are never skipped because a dropped record would misstate totals.
// Blank lines carry no record and are ignored.
func (s *Store) LoadAll() ([]expense.Expense, error) {
	f, err := os.Open(s.logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", s.logPath).Msg("no expense log yet")
			return []expense.Expense{}, nil
		}
		return nil, &IOError{Op: "open", Path: s.logPath, Err: err}
	}
	defer func() { _ = f.Close() }()

	records := []expense.Expense{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		e, reason := ParseLine(line)
		if reason != "" {
			return nil, &CorruptError{Path: s.logPath, Line: lineNo, Text: line, Reason: reason}
		}
		records = append(records, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read", Path: s.logPath, Err: err}
	}

	log.Debug().Str("path", s.logPath).Int("records", len(records)).Msg("loaded expense log")
	return records, nil
}

// LoadBudget reads the budget figure. A missing file reads as zero with
// found false and is left missing, so callers can still ask for the value.
// A non-numeric or negative value is a *CorruptError, the same policy as the
// expense log. Interactive callers recover by asking for the value again.
func (s *Store) LoadBudget() (value decimal.Decimal, found bool, err error) {
	data, err := os.ReadFile(s.budgetPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, &IOError{Op: "read", Path: s.budgetPath, Err: err}
	}

	text := strings.TrimSpace(string(data))
	v, perr := expense.ParseAmount(text)
	if perr != nil {
		return decimal.Zero, true, &CorruptError{Path: s.budgetPath, Text: text, Reason: perr.Error()}
	}

	log.Debug().Str("path", s.budgetPath).Str("value", v.String()).Msg("loaded budget")
	return v, true, nil
}

// SaveBudget replaces the budget file with v.
func (s *Store) SaveBudget(v decimal.Decimal) error {
	if err := expense.ValidateAmount("budget", v); err != nil {
		return err
	}
	if v.IsZero() {
		v = decimal.Zero
	}
	if err := ensureDir(s.budgetPath); err != nil {
		return err
	}
	if err := os.WriteFile(s.budgetPath, []byte(v.String()+"\n"), 0o600); err != nil {
		return &IOError{Op: "write", Path: s.budgetPath, Err: err}
	}

	log.Debug().Str("path", s.budgetPath).Str("value", v.String()).Msg("saved budget")
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: fmt.Errorf("creating data dir: %w", err)}
	}
	return nil
}
