package domain

import "time"

// Submission is one completed intake kept in the history table. Payload
// holds the encoded AnswerRecord as it was at submission.
type Submission struct {
	ID          string
	Stage       Stage
	Name        string
	Email       string
	Payload     []byte
	SubmittedAt time.Time
}
