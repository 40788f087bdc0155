package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/app"
	"github.com/Geetanshgarg/future-gaze/internal/catalog"
	"github.com/Geetanshgarg/future-gaze/internal/repository"
)

// GuestName greets a user who has not completed an intake yet.
const GuestName = "there"

type dashboardService struct {
	intake      IntakeService
	submissions repository.SubmissionRepo
	observer    UseCaseObserver
}

func NewDashboardService(intake IntakeService, submissions repository.SubmissionRepo, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		intake:      intake,
		submissions: submissions,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Dashboard(ctx context.Context) (resp *app.DashboardResponse, err error) {
	defer observe(ctx, s.observer, "dashboard", map[string]any{})(&err)

	snapshot, err := catalog.Dashboard()
	if err != nil {
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}

	taken, err := s.submissions.Count(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.intake.Latest(ctx)
	if err != nil {
		return nil, err
	}

	resp = &app.DashboardResponse{
		DisplayName:      GuestName,
		AssessmentsTaken: taken,
		Snapshot:         snapshot,
	}
	if rec != nil {
		resp.HasProfile = true
		resp.Stage = rec.Stage
		if first := firstName(rec.Name); first != "" {
			resp.DisplayName = first
		}
	}
	return resp, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
