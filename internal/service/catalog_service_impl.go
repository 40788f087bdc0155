package service

import (
	"context"
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/app"
	"github.com/Geetanshgarg/future-gaze/internal/catalog"
)

type catalogService struct {
	observer UseCaseObserver
}

func NewCatalogService(observers ...UseCaseObserver) CatalogService {
	return &catalogService{observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return catalog.Categories()
}

func (s *catalogService) Careers(ctx context.Context, req app.CareersRequest) (resp *app.CareersResponse, err error) {
	fields := map[string]any{"category": req.Category}
	defer observe(ctx, s.observer, "list-careers", fields)(&err)

	cat, err := catalog.Category(req.Category)
	if err != nil {
		return nil, err
	}

	careers, err := catalog.Query(cat, catalog.CareerQuery{
		Search: req.Search,
		SortBy: req.SortBy,
		Demand: req.Demand,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s careers: %w", cat.Slug, err)
	}
	fields["shown"] = len(careers)

	return &app.CareersResponse{
		Slug:         cat.Slug,
		Name:         cat.Name,
		Description:  cat.Description,
		TotalCareers: cat.TotalCareers,
		Careers:      careers,
		Available:    len(cat.Careers),
	}, nil
}
