// Package store provides a SQLite-backed journal of observed balance
// snapshots. Only inputs are journaled; projections are recomputed from
// scratch on every run and never persisted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"valvelet/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS balance_snapshots (
    amount       TEXT NOT NULL,
    as_of        TEXT NOT NULL,
    recorded_at  TEXT NOT NULL,
    PRIMARY KEY (amount, as_of)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_as_of ON balance_snapshots(as_of);
`

// Journal records balance readings as the user updates balance.xml.
type Journal struct {
	db *sql.DB
}

// Entry is one journaled balance reading.
type Entry struct {
	Amount     decimal.Decimal
	AsOf       time.Time
	RecordedAt time.Time
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record journals a balance reading. Re-recording an unchanged reading is a
// no-op, so reloads don't pile up duplicate rows.
func (j *Journal) Record(b model.BalanceSnapshot) error {
	_, err := j.db.Exec(
		`INSERT OR IGNORE INTO balance_snapshots (amount, as_of, recorded_at) VALUES (?, ?, ?)`,
		b.Amount.String(),
		b.AsOf.UTC().Format("2006-01-02"),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	return nil
}

// Entries returns all journaled readings, oldest as-of first.
func (j *Journal) Entries() ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT amount, as_of, recorded_at FROM balance_snapshots ORDER BY as_of, recorded_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var amountStr, asOfStr, recordedStr string
		if err := rows.Scan(&amountStr, &asOfStr, &recordedStr); err != nil {
			return nil, err
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q in journal: %w", amountStr, err)
		}
		asOf, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt as-of %q in journal: %w", asOfStr, err)
		}
		recorded, err := time.Parse(time.RFC3339, recordedStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt recorded-at %q in journal: %w", recordedStr, err)
		}

		entries = append(entries, Entry{Amount: amount, AsOf: asOf, RecordedAt: recorded})
	}
	return entries, rows.Err()
}

// DefaultPath returns the journal location under the user's cache dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "valvelet", "journal.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "valvelet", "journal.db")
}
