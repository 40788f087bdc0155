package repository

import (
	"context"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// Slot is the raw content of an answer slot.
type Slot struct {
	Key       string
	Payload   []byte
	UpdatedAt time.Time
}

// SubmissionRow is a history entry with its allocated number.
type SubmissionRow struct {
	domain.Submission
	Seq int
}

type AnswerSlotRepo interface {
	Put(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) (*Slot, error)
	Delete(ctx context.Context, key string) error
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*SubmissionRow, error)
	Count(ctx context.Context) (int, error)
}

var (
	_ AnswerSlotRepo = (*SQLiteAnswerSlotRepo)(nil)
	_ SubmissionRepo = (*SQLiteSubmissionRepo)(nil)
)
