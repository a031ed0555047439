// Package export writes a queryable SQLite snapshot of the expense log.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/expense"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ToSQLite replaces the snapshot at dbPath with records and the budget. The
// whole snapshot is written in a single transaction, so readers see either
// the previous export or the new one. amount_text keeps the exact decimal;
// amount is a float copy for SQL arithmetic.
func ToSQLite(ctx context.Context, dbPath string, records []expense.Expense, budget decimal.Decimal) error {
	db, err := open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM budget"); err != nil {
		return fmt.Errorf("clearing budget: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO expenses
		(seq, name, category, amount_text, amount) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range records {
		amount, _ := e.Amount().Float64()
		if _, err := stmt.ExecContext(ctx, i+1, e.Name(), e.Category().String(), e.Amount().String(), amount); err != nil {
			return fmt.Errorf("inserting expense %d: %w", i+1, err)
		}
	}

	value, _ := budget.Float64()
	if _, err := tx.ExecContext(ctx, "INSERT INTO budget (value_text, value) VALUES (?, ?)", budget.String(), value); err != nil {
		return fmt.Errorf("inserting budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	log.Debug().Str("path", dbPath).Int("records", len(records)).Msg("exported snapshot")
	return nil
}

func open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return db, nil
}
