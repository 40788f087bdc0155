package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/db"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// SQLiteSubmissionRepo appends completed intakes to the history table.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

// Create inserts s and returns its history number.
func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) (int, error) {
	var seq int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM submissions`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("allocating submission seq: %w", err)
	}

	query := `INSERT INTO submissions (id, seq, stage, name, email, payload, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		seq,
		string(s.Stage),
		s.Name,
		s.Email,
		string(s.Payload),
		s.SubmittedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting submission: %w", err)
	}
	return seq, nil
}

// ListRecent returns up to limit submissions, newest first. A limit of zero
// or less returns every row.
func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*SubmissionRow, error) {
	query := `SELECT id, seq, stage, name, email, payload, submitted_at
		FROM submissions ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []*SubmissionRow
	for rows.Next() {
		var (
			row         SubmissionRow
			stage       string
			payload     string
			submittedAt string
		)
		if err := rows.Scan(&row.ID, &row.Seq, &stage, &row.Name, &row.Email, &payload, &submittedAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		row.Stage = domain.Stage(stage)
		row.Payload = []byte(payload)
		row.SubmittedAt, _ = time.Parse(time.RFC3339Nano, submittedAt)
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return out, nil
}

func (r *SQLiteSubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}
