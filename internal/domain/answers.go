package domain

import "slices"

// DefaultPerformance is the slider's starting position.
const DefaultPerformance = 75

// AnswerRecord is the flat set of intake answers for one session.
type AnswerRecord struct {
	Stage             Stage    `json:"stage"`
	Name              string   `json:"name"`
	Age               string   `json:"age"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Class10Marks      string   `json:"class10Marks"`
	Class12Marks      string   `json:"class12Marks,omitempty"`
	Stream            string   `json:"stream"`
	CurrentCourse     string   `json:"currentCourse,omitempty"`
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
	CareerGoals       string   `json:"careerGoals"`
	ExamResults       string   `json:"examResults,omitempty"`
	Performance       int      `json:"performance"`
	GoalShift         string   `json:"goalShift,omitempty"`
	PreferredLocation string   `json:"preferredLocation"`
	BudgetRange       string   `json:"budgetRange"`
	TimeCommitment    string   `json:"timeCommitment"`
	LearningStyle     string   `json:"learningStyle"`
}

// NewAnswerRecord returns an empty record with the slider at its default.
func NewAnswerRecord() *AnswerRecord {
	return &AnswerRecord{
		Skills:      []string{},
		Interests:   []string{},
		Performance: DefaultPerformance,
	}
}

// ToggleSkill removes skill when present, otherwise appends it.
func (a *AnswerRecord) ToggleSkill(skill string) {
	a.Skills = toggle(a.Skills, skill)
}

// ToggleInterest removes interest when present, otherwise appends it.
func (a *AnswerRecord) ToggleInterest(interest string) {
	a.Interests = toggle(a.Interests, interest)
}

func (a *AnswerRecord) HasSkill(skill string) bool {
	return slices.Contains(a.Skills, skill)
}

func (a *AnswerRecord) HasInterest(interest string) bool {
	return slices.Contains(a.Interests, interest)
}

// SetSkills reconciles the skill list against a selected set using toggles,
// so skills that stay selected keep their original insertion position.
func (a *AnswerRecord) SetSkills(selected []string) {
	a.Skills = reconcile(a.Skills, selected)
}

// SetInterests is the interest counterpart of SetSkills.
func (a *AnswerRecord) SetInterests(selected []string) {
	a.Interests = reconcile(a.Interests, selected)
}

// Clone returns a deep copy of the record.
func (a *AnswerRecord) Clone() *AnswerRecord {
	c := *a
	c.Skills = slices.Clone(a.Skills)
	c.Interests = slices.Clone(a.Interests)
	return &c
}

// PruneForStage clears the stage-specific fields that the record's current
// stage never asks for. Answers given under a previously selected stage are
// kept while editing and dropped here, at submission.
func (a *AnswerRecord) PruneForStage() {
	switch a.Stage {
	case StageSchool, StageUnset:
		a.Class12Marks = ""
		a.CurrentCourse = ""
		a.ExamResults = ""
		a.GoalShift = ""
	case StageTwelfthPass:
		a.CurrentCourse = ""
		a.GoalShift = ""
	case StageCollege:
		a.ExamResults = ""
	}
	if a.Stage != StageCollege {
		a.Performance = DefaultPerformance
	}
}

func toggle(list []string, v string) []string {
	if i := slices.Index(list, v); i >= 0 {
		return slices.Delete(slices.Clone(list), i, i+1)
	}
	return append(slices.Clone(list), v)
}

func reconcile(current, selected []string) []string {
	out := slices.Clone(current)
	for _, v := range current {
		if !slices.Contains(selected, v) {
			out = toggle(out, v)
		}
	}
	for _, v := range selected {
		if !slices.Contains(out, v) {
			out = toggle(out, v)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
