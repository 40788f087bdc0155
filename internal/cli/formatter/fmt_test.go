package formatter

import (
	"testing"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/app"
	"github.com/Geetanshgarg/future-gaze/internal/catalog"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
	"github.com/Geetanshgarg/future-gaze/internal/recommend"
	"github.com/Geetanshgarg/future-gaze/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResults_EmptyState(t *testing.T) {
	for _, resp := range []*contract.ResultsResponse{nil, {Source: contract.SourceNone}} {
		out := stripANSI(FormatResults(resp))
		assert.Contains(t, out, "NO RESULTS YET")
		assert.Contains(t, out, "futuregaze intake")
	}
}

func TestFormatResults_WithProfile(t *testing.T) {
	rec := testutil.NewTestAnswers(
		testutil.WithName("Asha Rao"),
		testutil.WithStage(domain.StageCollege),
		testutil.WithSkills("Programming"),
		testutil.WithPerformance(82),
	)
	resp := &contract.ResultsResponse{
		Source:     contract.SourceHandoff,
		Profile:    app.NewProfileSummary(rec),
		Careers:    recommend.Careers(rec),
		Colleges:   recommend.Colleges(),
		ActionPlan: recommend.ActionPlan(),
	}

	out := stripANSI(FormatResults(resp))
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "College Student")
	assert.Contains(t, out, "Software Engineer / Full-Stack Developer")
	assert.Contains(t, out, "94% match")
	assert.Contains(t, out, "RECOMMENDED COLLEGES")
	assert.Contains(t, out, "ACTION PLAN")
	assert.Contains(t, out, "82%")
}

func TestFormatResults_HidesGradesOutsideCollege(t *testing.T) {
	rec := testutil.NewTestAnswers()
	resp := &contract.ResultsResponse{
		Source:  contract.SourceStored,
		Profile: app.NewProfileSummary(rec),
		Careers: recommend.Careers(rec),
	}
	out := stripANSI(FormatResults(resp))
	assert.NotContains(t, out, "Grades")
	assert.Contains(t, out, "Data Analyst")
}

func TestFormatCareers(t *testing.T) {
	cat, err := catalog.Category("technology")
	require.NoError(t, err)

	resp := &contract.CareersResponse{
		Slug:        cat.Slug,
		Name:        cat.Name,
		Description: cat.Description,
		Careers:     cat.Careers[:1],
		Available:   len(cat.Careers),
	}
	out := stripANSI(FormatCareers(resp))
	assert.Contains(t, out, "Showing 1 of")
	assert.Contains(t, out, cat.Careers[0].Title)

	resp.Careers = nil
	assert.Contains(t, stripANSI(FormatCareers(resp)), "No careers match these filters.")
}

func TestFormatDashboard(t *testing.T) {
	snap, err := catalog.Dashboard()
	require.NoError(t, err)

	guest := stripANSI(FormatDashboard(&contract.DashboardResponse{DisplayName: "there", Snapshot: snap}))
	assert.Contains(t, guest, "Welcome back, there!")
	assert.Contains(t, guest, "Take the career assessment")
	assert.Contains(t, guest, "UPCOMING TASKS")

	known := stripANSI(FormatDashboard(&contract.DashboardResponse{
		DisplayName:      "Asha",
		HasProfile:       true,
		Stage:            domain.StageSchool,
		AssessmentsTaken: 2,
		Snapshot:         snap,
	}))
	assert.Contains(t, known, "Welcome back, Asha!")
	assert.Contains(t, known, "2 assessment(s) taken")
}

func TestFormatFieldErrors(t *testing.T) {
	assert.Empty(t, FormatFieldErrors(nil))

	out := stripANSI(FormatFieldErrors(intake.FieldErrors{
		intake.FieldName: "Name is required",
		intake.FieldAge:  "Age is required",
	}))
	assert.Equal(t, "✖ Age is required\n✖ Name is required\n", out)
}

func TestFormatBlocked(t *testing.T) {
	out := stripANSI(FormatBlocked(&intake.BlockedError{
		Index:  2,
		Step:   "Contact Details",
		Fields: intake.FieldErrors{intake.FieldEmail: "Invalid email format"},
	}))
	assert.Contains(t, out, "Step 3 Contact Details")
	assert.Contains(t, out, "email: Invalid email format")
}

func TestFormatSteps(t *testing.T) {
	out := stripANSI(FormatSteps(domain.StageTwelfthPass, domain.StepLabels(domain.StageTwelfthPass)))
	assert.Contains(t, out, " 5. Exam Results")
	assert.Contains(t, out, "8 steps")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, stripANSI(FormatHistory(nil, now)), "No assessments submitted yet.")

	out := stripANSI(FormatHistory([]contract.HistoryEntry{{
		Seq:         3,
		Name:        "Asha Rao",
		Stage:       domain.StageCollege,
		TopCareer:   "Data Analyst",
		SubmittedAt: now.Add(-2 * time.Hour),
	}}, now))
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "Data Analyst")
	assert.Contains(t, out, "2h ago")
}
