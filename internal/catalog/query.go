package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

const (
	SortRelevance = "relevance"
	SortTitle     = "title"
	SortGrowth    = "growth"

	FilterAll = "all"
)

// CareerQuery narrows and orders a category listing. Zero values mean no
// search, every demand level and relevance order.
type CareerQuery struct {
	Search string
	SortBy string
	Demand string
}

// Query filters and sorts the careers of cat. The category is not modified.
func Query(cat *domain.CareerCategory, q CareerQuery) ([]domain.Career, error) {
	sortBy := strings.ToLower(strings.TrimSpace(q.SortBy))
	if sortBy == "" {
		sortBy = SortRelevance
	}
	if sortBy != SortRelevance && sortBy != SortTitle && sortBy != SortGrowth {
		return nil, fmt.Errorf("invalid sort %q (expected relevance, title or growth)", q.SortBy)
	}

	demand, err := parseDemand(q.Demand)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Career, 0, len(cat.Careers))
	for _, c := range cloneCareers(cat.Careers) {
		if demand != "" && c.DemandLevel != demand {
			continue
		}
		if term != "" && !matchesSearch(c, term) {
			continue
		}
		out = append(out, c)
	}

	switch sortBy {
	case SortRelevance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortGrowth:
		sort.SliceStable(out, func(i, j int) bool {
			return growthPercent(out[i].GrowthRate) > growthPercent(out[j].GrowthRate)
		})
	}
	return out, nil
}

func parseDemand(s string) (domain.DemandLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FilterAll:
		return "", nil
	case "high":
		return domain.DemandHigh, nil
	case "medium":
		return domain.DemandMedium, nil
	case "low":
		return domain.DemandLow, nil
	}
	return "", fmt.Errorf("invalid demand filter %q (expected all, High, Medium or Low)", s)
}

func matchesSearch(c domain.Career, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term) {
		return true
	}
	for _, s := range c.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// growthPercent reads the leading number of a rate such as "15% annually".
func growthPercent(rate string) float64 {
	num, _, _ := strings.Cut(strings.TrimSpace(rate), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	return v
}
