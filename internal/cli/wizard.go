package cli

import (
	"slices"
	"strconv"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme returns a huh theme matching the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✓] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// stepScratch holds form values that cannot bind straight to the record:
// the stage goes through Wizard.SetStage, tag lists are reconciled, and the
// performance slider is typed as text.
type stepScratch struct {
	stage       domain.Stage
	skills      []string
	interests   []string
	performance string
}

func newStepScratch(rec *domain.AnswerRecord) *stepScratch {
	return &stepScratch{
		stage:       rec.Stage,
		skills:      slices.Clone(rec.Skills),
		interests:   slices.Clone(rec.Interests),
		performance: strconv.Itoa(rec.Performance),
	}
}

// apply copies the scratch values for role back onto the wizard.
func (s *stepScratch) apply(role domain.StepRole, w *intake.Wizard) {
	rec := w.Record()
	switch role {
	case domain.RoleStageSelection:
		w.SetStage(s.stage)
	case domain.RoleSkillsInterests:
		rec.SetSkills(s.skills)
		rec.SetInterests(s.interests)
	case domain.RoleCurrentPerformance:
		rec.Performance = parsePercent(s.performance, domain.DefaultPerformance)
	}
}

// stepForm builds the form for one step. Plain text and option fields bind
// directly to the record so edits land on it as they are made.
func stepForm(role domain.StepRole, rec *domain.AnswerRecord, s *stepScratch) *huh.Form {
	var fields []huh.Field

	switch role {
	case domain.RoleStageSelection:
		// The blank option keeps the stage unset until the user picks one.
		opts := make([]huh.Option[domain.Stage], 0, 4)
		opts = append(opts, huh.NewOption("Select your stage", domain.StageUnset))
		for _, st := range []domain.Stage{domain.StageSchool, domain.StageTwelfthPass, domain.StageCollege} {
			opts = append(opts, huh.NewOption(st.Label(), st))
		}
		fields = append(fields, huh.NewSelect[domain.Stage]().
			Title("What is your current stage?").
			Description("This decides which questions follow.").
			Options(opts...).
			Value(&s.stage))

	case domain.RolePersonalInfo:
		fields = append(fields,
			textInput("Full Name", "Your name", &rec.Name),
			textInput("Age", "17", &rec.Age),
		)

	case domain.RoleContactDetails:
		fields = append(fields,
			textInput("Email", "you@example.com", &rec.Email),
			textInput("Phone (optional)", "+91 98765 43210", &rec.Phone),
		)

	case domain.RoleAcademicDetails:
		fields = append(fields, textInput("10th Marks (%)", "85", &rec.Class10Marks))
		if rec.Stage == domain.StageTwelfthPass || rec.Stage == domain.StageCollege {
			fields = append(fields, textInput("12th Marks (%)", "88", &rec.Class12Marks))
		}
		fields = append(fields, optionSelect("Stream", "Select your stream", domain.StreamOptions, &rec.Stream))
		if rec.Stage == domain.StageCollege {
			fields = append(fields, textInput("Current Course", "B.Tech Computer Science", &rec.CurrentCourse))
		}

	case domain.RoleExamResults:
		fields = append(fields, textArea("Entrance Exam Results",
			"JEE Main: 95 percentile, NEET: not attempted", &rec.ExamResults))

	case domain.RoleCurrentPerformance:
		fields = append(fields, percentInput("Current academic performance (0-100)", &s.performance))

	case domain.RoleSkillsInterests:
		fields = append(fields,
			tagSelect("Skills", domain.SkillOptions, &s.skills),
			tagSelect("Interests", domain.InterestOptions, &s.interests),
		)

	case domain.RolePreferences:
		fields = append(fields,
			optionSelect("Preferred Location", "No preference", domain.LocationOptions, &rec.PreferredLocation),
			optionSelect("Budget Range", "No preference", domain.BudgetOptions, &rec.BudgetRange),
			optionSelect("Time Commitment", "No preference", domain.TimeCommitmentOptions, &rec.TimeCommitment),
			optionSelect("Learning Style", "No preference", domain.LearningStyleOptions, &rec.LearningStyle),
		)

	case domain.RoleGoals:
		fields = append(fields, textArea("Career Goals", "Where do you see yourself in five years?", &rec.CareerGoals))

	case domain.RoleGoalsAndChanges:
		fields = append(fields,
			textArea("Career Goals", "Where do you see yourself in five years?", &rec.CareerGoals),
			textArea("Have your goals changed since you started college?", "Optional", &rec.GoalShift),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huhTheme()).
		WithShowHelp(false)
}
