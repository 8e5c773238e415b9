// Package eventlog persists an append-only log of answer events in SQLite,
// backing the stats command. The JSON progress snapshot remains the source
// of truth for question weighting; this log only accumulates history.
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Answer is one answered question.
type Answer struct {
	SessionID string
	Category  string
	Term      string
	Mode      string
	Direction string
	Correct   bool
	At        time.Time
}

// CategoryTotals aggregates answers for one category.
type CategoryTotals struct {
	Category string
	Attempts int
	Correct  int
}

// Accuracy returns the fraction of correct answers, 0 for no attempts.
func (t CategoryTotals) Accuracy() float64 {
	if t.Attempts == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempts)
}

// Log wraps SQLite access for answer events.
type Log struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	l := &Log{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return l, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (l *Log) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			answered_at TEXT NOT NULL,
			category TEXT NOT NULL,
			term TEXT NOT NULL,
			mode TEXT NOT NULL,
			direction TEXT NOT NULL,
			correct INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_answers_category ON answers(category);`,
		`CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);`,
	}
	for _, stmt := range stmts {
		if _, err := l.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append stores one answer event.
func (l *Log) Append(ctx context.Context, a Answer) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO answers (session_id, answered_at, category, term, mode, direction, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID,
		a.At.Format(time.RFC3339Nano),
		a.Category,
		a.Term,
		a.Mode,
		a.Direction,
		boolToInt(a.Correct),
	)
	return err
}

// Totals aggregates answers per category, ordered by category name.
func (l *Log) Totals(ctx context.Context) ([]CategoryTotals, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT category, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM answers GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []CategoryTotals
	for rows.Next() {
		var t CategoryTotals
		if err := rows.Scan(&t.Category, &t.Attempts, &t.Correct); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// HardestTerms returns the terms with the most wrong answers, worst first.
func (l *Log) HardestTerms(ctx context.Context, limit int) ([]TermTotals, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT category, term, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM answers GROUP BY category, term
		 HAVING COUNT(*) > SUM(correct)
		 ORDER BY COUNT(*) - SUM(correct) DESC, term
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []TermTotals
	for rows.Next() {
		var t TermTotals
		if err := rows.Scan(&t.Category, &t.Term, &t.Attempts, &t.Correct); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TermTotals aggregates answers for one term.
type TermTotals struct {
	Category string
	Term     string
	Attempts int
	Correct  int
}

// Reset deletes all recorded answers.
func (l *Log) Reset(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `DELETE FROM answers`)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
