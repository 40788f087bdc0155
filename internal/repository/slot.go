package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/db"
)

// SQLiteAnswerSlotRepo stores encoded answer records under fixed keys.
type SQLiteAnswerSlotRepo struct {
	db db.DBTX
}

func NewSQLiteAnswerSlotRepo(conn db.DBTX) *SQLiteAnswerSlotRepo {
	return &SQLiteAnswerSlotRepo{db: conn}
}

// Put replaces whatever the slot held.
func (r *SQLiteAnswerSlotRepo) Put(ctx context.Context, key string, payload []byte) error {
	query := `INSERT INTO answer_slots (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(payload), nowUTC()); err != nil {
		return fmt.Errorf("writing answer slot %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteAnswerSlotRepo) Get(ctx context.Context, key string) (*Slot, error) {
	query := `SELECT key, payload, updated_at FROM answer_slots WHERE key = ?`

	var (
		s         Slot
		payload   string
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &payload, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("answer slot %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("loading answer slot %q: %w", key, err)
	}
	s.Payload = []byte(payload)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}

// Delete clears the slot. Clearing an empty slot is not an error.
func (r *SQLiteAnswerSlotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answer_slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clearing answer slot %q: %w", key, err)
	}
	return nil
}
