package app

import "github.com/Geetanshgarg/future-gaze/internal/domain"

// ResultsRequest asks for recommendations. When Answers is set it is used
// as-is; otherwise the stored answer slot is read.
type ResultsRequest struct {
	Answers *domain.AnswerRecord
}

// ResultsSource says where the answers behind a response came from.
type ResultsSource string

const (
	SourceHandoff ResultsSource = "handoff"
	SourceStored  ResultsSource = "stored"
	SourceNone    ResultsSource = "none"
)

// ProfileSummary is the short restatement of the answers shown above the
// recommendations.
type ProfileSummary struct {
	Name           string       `json:"name"`
	Stage          domain.Stage `json:"stage"`
	StageLabel     string       `json:"stageLabel"`
	Stream         string       `json:"stream"`
	StreamLabel    string       `json:"streamLabel"`
	Skills         []string     `json:"skills"`
	Interests      []string     `json:"interests"`
	CareerGoals    string       `json:"careerGoals,omitempty"`
	Performance    int          `json:"performance,omitempty"`
	HasPerformance bool         `json:"-"`
}

type ResultsResponse struct {
	Source     ResultsSource        `json:"source"`
	Profile    *ProfileSummary      `json:"profile,omitempty"`
	Careers    []domain.CareerMatch `json:"careers"`
	Colleges   []domain.College     `json:"colleges"`
	ActionPlan []domain.ActionStep  `json:"actionPlan"`
}

// NewProfileSummary builds the summary for rec. It returns nil for a nil record.
func NewProfileSummary(rec *domain.AnswerRecord) *ProfileSummary {
	if rec == nil {
		return nil
	}
	return &ProfileSummary{
		Name:           rec.Name,
		Stage:          rec.Stage,
		StageLabel:     rec.Stage.Label(),
		Stream:         rec.Stream,
		StreamLabel:    domain.OptionLabel(domain.StreamOptions, rec.Stream),
		Skills:         append([]string{}, rec.Skills...),
		Interests:      append([]string{}, rec.Interests...),
		CareerGoals:    rec.CareerGoals,
		Performance:    rec.Performance,
		HasPerformance: rec.Stage == domain.StageCollege,
	}
}
