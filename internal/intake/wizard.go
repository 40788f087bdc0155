// Package intake drives the multi-step intake form: it derives the step
// sequence from the selected stage, validates the current step before
// advancing and hands the finished record to a Submitter.
package intake

import (
	"context"
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// Submitter receives the completed answer record.
type Submitter interface {
	Submit(ctx context.Context, rec *domain.AnswerRecord) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, rec *domain.AnswerRecord) error

func (f SubmitterFunc) Submit(ctx context.Context, rec *domain.AnswerRecord) error {
	return f(ctx, rec)
}

// Outcome reports what a call to Next did.
type Outcome int

const (
	OutcomeBlocked Outcome = iota
	OutcomeAdvanced
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Wizard is the intake state machine. It is not safe for concurrent use.
type Wizard struct {
	rec       *domain.AnswerRecord
	submitter Submitter
	index     int
	errs      FieldErrors
	completed bool
}

// New starts a wizard at step 0. A nil record starts from an empty one.
func New(rec *domain.AnswerRecord, submitter Submitter) *Wizard {
	if rec == nil {
		rec = domain.NewAnswerRecord()
	}
	return &Wizard{rec: rec, submitter: submitter, errs: FieldErrors{}}
}

// Record returns the live record. Field edits land on it directly.
func (w *Wizard) Record() *domain.AnswerRecord { return w.rec }

func (w *Wizard) Steps() []domain.StepRole { return domain.StepSequence(w.rec.Stage) }

func (w *Wizard) Len() int { return len(w.Steps()) }

func (w *Wizard) Index() int { return w.index }

func (w *Wizard) Current() domain.StepRole { return w.Steps()[w.index] }

func (w *Wizard) IsLast() bool { return w.index == w.Len()-1 }

func (w *Wizard) Completed() bool { return w.completed }

// Progress returns the completion percentage including the current step.
func (w *Wizard) Progress() float64 {
	return float64(w.index+1) / float64(w.Len()) * 100
}

// Errors returns the field messages from the last validation.
func (w *Wizard) Errors() FieldErrors { return w.errs }

// Next validates the current step. On failure the index stays put and the
// messages are available from Errors. On the last step the record is
// handed to the submitter; a submit error leaves the wizard on that step.
func (w *Wizard) Next(ctx context.Context) (Outcome, error) {
	w.errs = ValidateStep(w.Current(), w.rec)
	if len(w.errs) > 0 {
		return OutcomeBlocked, nil
	}

	if !w.IsLast() {
		w.index++
		return OutcomeAdvanced, nil
	}

	if w.submitter != nil {
		if err := w.submitter.Submit(ctx, w.rec); err != nil {
			return OutcomeBlocked, fmt.Errorf("submitting answers: %w", err)
		}
	}
	w.completed = true
	return OutcomeCompleted, nil
}

// Previous steps back without validation. It never goes below 0.
func (w *Wizard) Previous() {
	if w.index > 0 {
		w.index--
	}
	w.errs = FieldErrors{}
}

// SetStage changes the discriminant. Previously entered answers are kept;
// the index is clamped into the new sequence.
func (w *Wizard) SetStage(stage domain.Stage) {
	w.rec.Stage = stage
	if n := w.Len(); w.index >= n {
		w.index = n - 1
	}
	delete(w.errs, FieldStage)
}

func (w *Wizard) ToggleSkill(skill string) { w.rec.ToggleSkill(skill) }

func (w *Wizard) ToggleInterest(interest string) { w.rec.ToggleInterest(interest) }
