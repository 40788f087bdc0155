package service

import (
	"context"

	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// IntakeService persists completed intakes. It satisfies intake.Submitter.
type IntakeService interface {
	Submit(ctx context.Context, rec *domain.AnswerRecord) error
	Latest(ctx context.Context) (*domain.AnswerRecord, error)
	Reset(ctx context.Context) error
	History(ctx context.Context, limit int) ([]contract.HistoryEntry, error)
}

type ResultsService interface {
	Results(ctx context.Context, req contract.ResultsRequest) (*contract.ResultsResponse, error)
}

type CatalogService interface {
	Categories(ctx context.Context) ([]string, error)
	Careers(ctx context.Context, req contract.CareersRequest) (*contract.CareersResponse, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*contract.DashboardResponse, error)
}
