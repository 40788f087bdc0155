package testutil

import (
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/google/uuid"
)

// AnswerOption customises a fixture record.
type AnswerOption func(*domain.AnswerRecord)

func WithStage(s domain.Stage) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Stage = s
	}
}

func WithName(name string) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Name = name
	}
}

func WithEmail(email string) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Email = email
	}
}

func WithStream(stream string) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Stream = stream
	}
}

func WithSkills(skills ...string) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Skills = append([]string{}, skills...)
	}
}

func WithInterests(interests ...string) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Interests = append([]string{}, interests...)
	}
}

func WithPerformance(p int) AnswerOption {
	return func(a *domain.AnswerRecord) {
		a.Performance = p
	}
}

// NewTestAnswers returns a record that passes every required-field check for
// a school student with no skills or interests selected.
func NewTestAnswers(opts ...AnswerOption) *domain.AnswerRecord {
	a := domain.NewAnswerRecord()
	a.Stage = domain.StageSchool
	a.Name = "Asha Verma"
	a.Age = "17"
	a.Email = "asha@example.com"
	a.Phone = "+91 98765 43210"
	a.Class10Marks = "92"
	a.Stream = "commerce"
	a.CareerGoals = "Work somewhere I can keep learning"
	a.PreferredLocation = "metro"
	a.BudgetRange = "medium"
	a.TimeCommitment = "long"
	a.LearningStyle = "mixed"
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SubmissionOption customises a fixture submission.
type SubmissionOption func(*domain.Submission)

func WithSubmittedAt(t time.Time) SubmissionOption {
	return func(s *domain.Submission) {
		s.SubmittedAt = t
	}
}

func NewTestSubmission(payload []byte, opts ...SubmissionOption) *domain.Submission {
	s := &domain.Submission{
		ID:          uuid.New().String(),
		Stage:       domain.StageSchool,
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Payload:     payload,
		SubmittedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
