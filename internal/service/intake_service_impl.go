package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/answers"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/db"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
	"github.com/Geetanshgarg/future-gaze/internal/recommend"
	"github.com/Geetanshgarg/future-gaze/internal/repository"
	"github.com/google/uuid"
)

type intakeService struct {
	slotKey     string
	slots       repository.AnswerSlotRepo
	submissions repository.SubmissionRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
	now         func() time.Time
}

var _ intake.Submitter = (*intakeService)(nil)

func NewIntakeService(
	slotKey string,
	slots repository.AnswerSlotRepo,
	submissions repository.SubmissionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) IntakeService {
	return &intakeService{
		slotKey:     slotKey,
		slots:       slots,
		submissions: submissions,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a pruned copy of rec in the answer slot and appends it to
// the history in one transaction. rec itself is not modified.
func (s *intakeService) Submit(ctx context.Context, rec *domain.AnswerRecord) (err error) {
	fields := map[string]any{"slot": s.slotKey}
	defer observe(ctx, s.observer, "submit-intake", fields)(&err)

	frozen := rec.Clone()
	frozen.PruneForStage()
	fields["stage"] = string(frozen.Stage)

	payload, err := answers.Encode(frozen)
	if err != nil {
		return err
	}

	sub := &domain.Submission{
		ID:          uuid.New().String(),
		Stage:       frozen.Stage,
		Name:        frozen.Name,
		Email:       frozen.Email,
		Payload:     payload,
		SubmittedAt: s.now(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteAnswerSlotRepo(tx).Put(ctx, s.slotKey, payload); err != nil {
			return err
		}
		seq, err := repository.NewSQLiteSubmissionRepo(tx).Create(ctx, sub)
		if err != nil {
			return err
		}
		fields["seq"] = seq
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving answers: %w", err)
	}
	return nil
}

// Latest returns the stored record, or nil when the slot is empty or holds
// something that no longer decodes.
func (s *intakeService) Latest(ctx context.Context) (*domain.AnswerRecord, error) {
	slot, err := s.slots.Get(ctx, s.slotKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading answer slot: %w", err)
	}
	rec, err := answers.Decode(slot.Payload)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:    "decode-answer-slot",
			Success: false,
			Err:     err,
			Fields:  map[string]any{"slot": s.slotKey},
		})
		return nil, nil
	}
	return rec, nil
}

func (s *intakeService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset-intake", map[string]any{"slot": s.slotKey})(&err)
	return s.slots.Delete(ctx, s.slotKey)
}

func (s *intakeService) History(ctx context.Context, limit int) ([]contract.HistoryEntry, error) {
	rows, err := s.submissions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	entries := make([]contract.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		e := contract.HistoryEntry{
			Seq:         r.Seq,
			ID:          r.ID,
			Stage:       r.Stage,
			Name:        r.Name,
			Email:       r.Email,
			SubmittedAt: r.SubmittedAt,
		}
		if rec, err := answers.Decode(r.Payload); err == nil {
			if careers := recommend.Careers(rec); len(careers) > 0 {
				e.TopCareer = careers[0].Title
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
