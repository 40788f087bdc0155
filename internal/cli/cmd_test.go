package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/answers"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/repository"
	"github.com/Geetanshgarg/future-gaze/internal/service"
	"github.com/Geetanshgarg/future-gaze/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSlotKey = "futureGazeFormData"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires every service against a fresh in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	slots := repository.NewSQLiteAnswerSlotRepo(database)
	subs := repository.NewSQLiteSubmissionRepo(database)
	intakeSvc := service.NewIntakeService(testSlotKey, slots, subs, testutil.NewTestUoW(database))

	return &App{
		Intake:    intakeSvc,
		Results:   service.NewResultsService(intakeSvc),
		Catalog:   service.NewCatalogService(),
		Dashboard: service.NewDashboardService(intakeSvc, subs),
		Now:       func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func writeAnswersFile(t *testing.T, rec *domain.AnswerRecord) string {
	t.Helper()
	payload, err := answers.Encode(rec)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	return path
}

// --- root ---

func TestRootCmd_NoTerminal_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "futuregaze")
	assert.Contains(t, output, "intake")
}

// --- steps ---

func TestStepsCmd_EachStage(t *testing.T) {
	tests := []struct {
		stage string
		want  []string
		count string
	}{
		{"", []string{"Stage Selection", "Contact Details"}, "3 steps"},
		{"school", []string{"Academic Details", "Goals"}, "7 steps"},
		{"12th-pass", []string{"Exam Results"}, "8 steps"},
		{"college", []string{"Current Performance", "Goals & Changes"}, "8 steps"},
	}
	for _, tt := range tests {
		t.Run("stage="+tt.stage, func(t *testing.T) {
			output, err := executeCmd(t, testApp(t), "steps", "--stage", tt.stage)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, output, w)
			}
			assert.Contains(t, output, tt.count)
		})
	}
}

func TestStepsCmd_UnknownStage(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "steps", "--stage", "postgrad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown stage "postgrad"`)
}

// --- intake ---

func TestIntakeCmd_RequiresTerminalWithoutFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "intake")
	assert.ErrorIs(t, err, errNeedsTerminal)
}

func TestIntakeCmd_FromFile(t *testing.T) {
	app := testApp(t)
	path := writeAnswersFile(t, testutil.NewTestAnswers(
		testutil.WithName("Meera Iyer"),
		testutil.WithSkills("Programming"),
	))

	output, err := executeCmd(t, app, "intake", "--from", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Assessment saved.")
	assert.Contains(t, output, "Meera Iyer")
	assert.Contains(t, output, "Software Engineer / Full-Stack Developer")

	stored, err := app.Intake.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Meera Iyer", stored.Name)
}

func TestIntakeCmd_FromFileBlocked(t *testing.T) {
	app := testApp(t)
	path := writeAnswersFile(t, testutil.NewTestAnswers(testutil.WithEmail("not-an-email")))

	output, err := executeCmd(t, app, "intake", "--from", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
	assert.Contains(t, output, "Contact Details")
	assert.Contains(t, output, "Invalid email format")

	stored, err := app.Intake.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestIntakeCmd_FromFileRejectsUnknownStream(t *testing.T) {
	app := testApp(t)
	path := writeAnswersFile(t, testutil.NewTestAnswers(testutil.WithStream("astrology")))

	_, err := executeCmd(t, app, "intake", "--from", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, answers.ErrMalformed)
	assert.Contains(t, err.Error(), `stream: invalid value "astrology"`)

	stored, err := app.Intake.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)

	history, err := app.Intake.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestIntakeCmd_FromMissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "intake", "--from", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestIntakeCmd_FromAndResumeExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "intake", "--from", "x.json", "--resume")
	assert.Error(t, err)
}

// --- results ---

func TestResultsCmd_EmptyState(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "results")
	require.NoError(t, err)
	assert.Contains(t, output, "NO RESULTS YET")
}

func TestResultsCmd_StoredAnswers(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Intake.Submit(context.Background(),
		testutil.NewTestAnswers(testutil.WithInterests("Healthcare"))))

	output, err := executeCmd(t, app, "results")
	require.NoError(t, err)
	assert.Contains(t, output, "Medical Doctor / Specialist")
	assert.Contains(t, output, "RECOMMENDED COLLEGES")
}

func TestResultsCmd_JSON(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Intake.Submit(context.Background(),
		testutil.NewTestAnswers(testutil.WithSkills("Programming"))))

	output, err := executeCmd(t, app, "results", "--json")
	require.NoError(t, err)

	var resp contract.ResultsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, contract.SourceStored, resp.Source)
	require.NotEmpty(t, resp.Careers)
	assert.Equal(t, 94, resp.Careers[0].MatchPercentage)
	assert.Len(t, resp.Colleges, 5)
	assert.Len(t, resp.ActionPlan, 6)
}

// --- careers ---

func TestCareersCmd_ListsCategories(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "careers")
	require.NoError(t, err)
	assert.Contains(t, output, "technology")
}

func TestCareersCmd_Category(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "careers", "technology", "--sort", "title", "--demand", "High")
	require.NoError(t, err)
	assert.Contains(t, output, "Showing")
}

func TestCareersCmd_UnknownCategory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "careers", "astrology")
	assert.Error(t, err)
}

func TestCareersCmd_InvalidSort(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "careers", "technology", "--sort", "salary")
	assert.Error(t, err)
}

// --- dashboard, history, reset ---

func TestDashboardCmd_Guest(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "dashboard")
	require.NoError(t, err)
	assert.Contains(t, output, "Welcome back, there!")
}

func TestDashboardCmd_GreetsStoredProfile(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Intake.Submit(context.Background(),
		testutil.NewTestAnswers(testutil.WithName("Kabir Singh"))))

	output, err := executeCmd(t, app, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, output, "Welcome back, Kabir!")
	assert.Contains(t, output, "1 assessment(s) taken")
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, output, "No assessments submitted yet.")

	ctx := context.Background()
	require.NoError(t, app.Intake.Submit(ctx, testutil.NewTestAnswers(testutil.WithName("First"))))
	require.NoError(t, app.Intake.Submit(ctx, testutil.NewTestAnswers(testutil.WithName("Second"))))

	output, err = executeCmd(t, app, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Second")
	assert.NotContains(t, output, "First")
}

func TestHistoryCmd_InvalidLimit(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "history", "--limit", "0")
	assert.Error(t, err)
}

func TestResetCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Intake.Submit(ctx, testutil.NewTestAnswers()))

	output, err := executeCmd(t, app, "reset")
	require.NoError(t, err)
	assert.Contains(t, output, "Stored answers cleared.")

	stored, err := app.Intake.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)

	history, err := app.Intake.History(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
