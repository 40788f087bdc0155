package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are re-run on each
// open, so they must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillSubmissionSeq(db); err != nil {
		return fmt.Errorf("backfilling submission seq: %w", err)
	}
	return nil
}

// migrateBackfillSubmissionSeq numbers history rows written before the seq
// column existed, in submission order after any already numbered rows.
func migrateBackfillSubmissionSeq(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions WHERE seq = 0`).Scan(&pending); err != nil {
		return fmt.Errorf("counting unnumbered submissions: %w", err)
	}
	if pending == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM submissions`).Scan(&next); err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT id FROM submissions WHERE seq = 0 ORDER BY submitted_at, id`)
	if err != nil {
		return fmt.Errorf("listing unnumbered submissions: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning submission id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating submissions: %w", err)
	}

	for _, id := range ids {
		next++
		if _, err := tx.ExecContext(ctx, `UPDATE submissions SET seq = ? WHERE id = ?`, next, id); err != nil {
			return fmt.Errorf("numbering submission %s: %w", id, err)
		}
	}
	return tx.Commit()
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS answer_slots (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		stage TEXT NOT NULL DEFAULT '' CHECK(stage IN ('', 'school', '12th-pass', 'college')),
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		payload TEXT NOT NULL,
		submitted_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_submitted ON submissions(submitted_at)`,
	`ALTER TABLE submissions ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}
