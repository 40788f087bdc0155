package app

import (
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// DashboardResponse combines the static dashboard snapshot with what is
// known about the local user.
type DashboardResponse struct {
	// DisplayName is the stored profile's name, or a generic greeting name
	// when no intake has been completed.
	DisplayName      string
	HasProfile       bool
	Stage            domain.Stage
	AssessmentsTaken int
	Snapshot         *domain.Dashboard
}

type HistoryEntry struct {
	Seq         int
	ID          string
	Stage       domain.Stage
	Name        string
	Email       string
	SubmittedAt time.Time
	// TopCareer is the first recommendation for the stored answers, or
	// empty when the payload can no longer be decoded.
	TopCareer string
}
