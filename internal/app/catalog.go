package app

import "github.com/Geetanshgarg/future-gaze/internal/domain"

// CareersRequest lists one category. Empty SortBy and Demand mean
// "relevance" and "all".
type CareersRequest struct {
	Category string
	Search   string
	SortBy   string
	Demand   string
}

type CareersResponse struct {
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	TotalCareers int             `json:"totalCareers"`
	Careers      []domain.Career `json:"careers"`
	// Available is the number of careers in the category before filtering.
	Available int `json:"available"`
}
