package service

import (
	"context"

	"github.com/Geetanshgarg/future-gaze/internal/app"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/recommend"
)

type resultsService struct {
	intake   IntakeService
	observer UseCaseObserver
}

func NewResultsService(intake IntakeService, observers ...UseCaseObserver) ResultsService {
	return &resultsService{intake: intake, observer: useCaseObserverOrNoop(observers)}
}

// Results derives recommendations. Missing or unreadable stored answers
// produce an empty career list next to the static tables.
func (s *resultsService) Results(ctx context.Context, req app.ResultsRequest) (resp *app.ResultsResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "results", fields)(&err)

	rec := req.Answers
	source := app.SourceHandoff
	if rec == nil {
		rec, err = s.intake.Latest(ctx)
		if err != nil {
			return nil, err
		}
		source = app.SourceStored
		if rec == nil {
			source = app.SourceNone
		}
	}

	careers := recommend.Careers(rec)
	fields["source"] = string(source)
	fields["careers"] = len(careers)
	if len(careers) > 0 {
		fields["rules"] = ruleIDs(careers)
	}

	return &app.ResultsResponse{
		Source:     source,
		Profile:    app.NewProfileSummary(rec),
		Careers:    careers,
		Colleges:   recommend.Colleges(),
		ActionPlan: recommend.ActionPlan(),
	}, nil
}

func ruleIDs(careers []domain.CareerMatch) []string {
	ids := make([]string, len(careers))
	for i, c := range careers {
		ids[i] = string(c.RuleID)
	}
	return ids
}
