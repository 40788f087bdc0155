// Package catalog serves the static career categories and dashboard data
// embedded in the binary.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrCategoryNotFound is returned for a slug with no category.
var ErrCategoryNotFound = errors.New("career category not found")

//go:embed data/*.yaml
var dataFS embed.FS

var (
	loadOnce   sync.Once
	categories map[string]domain.CareerCategory
	dashboard  domain.Dashboard
	loadErr    error
)

func load() error {
	loadOnce.Do(func() {
		var cats []domain.CareerCategory
		if loadErr = decode("data/careers.yaml", &cats); loadErr != nil {
			return
		}
		categories = make(map[string]domain.CareerCategory, len(cats))
		for _, c := range cats {
			categories[c.Slug] = c
		}
		loadErr = decode("data/dashboard.yaml", &dashboard)
	})
	return loadErr
}

func decode(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Category returns a copy of the category registered under slug.
func Category(slug string) (*domain.CareerCategory, error) {
	if err := load(); err != nil {
		return nil, err
	}
	c, ok := categories[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, slug)
	}
	c.Careers = cloneCareers(c.Careers)
	return &c, nil
}

// Categories lists the known slugs in sorted order.
func Categories() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(categories))
	for s := range categories {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Dashboard returns a copy of the mock dashboard snapshot.
func Dashboard() (*domain.Dashboard, error) {
	if err := load(); err != nil {
		return nil, err
	}
	d := dashboard
	d.Achievements = append([]domain.Achievement(nil), dashboard.Achievements...)
	d.Activities = append([]domain.Activity(nil), dashboard.Activities...)
	d.Tasks = append([]domain.UpcomingTask(nil), dashboard.Tasks...)
	d.Skills = append([]domain.SkillProgress(nil), dashboard.Skills...)
	d.Courses = append([]domain.Course(nil), dashboard.Courses...)
	d.Goals = append([]domain.Goal(nil), dashboard.Goals...)
	d.StudyGroups = append([]domain.StudyGroup(nil), dashboard.StudyGroups...)
	d.Discussions = append([]domain.Discussion(nil), dashboard.Discussions...)
	return &d, nil
}

func cloneCareers(in []domain.Career) []domain.Career {
	out := make([]domain.Career, len(in))
	for i, c := range in {
		c.Skills = append([]string(nil), c.Skills...)
		out[i] = c
	}
	return out
}
