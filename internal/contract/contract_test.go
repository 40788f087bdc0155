package contract

import (
	"encoding/json"
	"testing"

	"github.com/Geetanshgarg/future-gaze/internal/app"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileSummary(t *testing.T) {
	assert.Nil(t, app.NewProfileSummary(nil))

	rec := domain.NewAnswerRecord()
	rec.Name = "Ravi"
	rec.Stage = domain.StageCollege
	rec.Stream = "engineering"
	rec.ToggleSkill("Programming")

	p := app.NewProfileSummary(rec)
	require.NotNil(t, p)
	assert.Equal(t, "College Student", p.StageLabel)
	assert.Equal(t, "Engineering", p.StreamLabel)
	assert.True(t, p.HasPerformance)

	rec.ToggleSkill("Design")
	assert.Equal(t, []string{"Programming"}, p.Skills, "summary must not alias the record")
}

func TestResultsResponse_JSONShape(t *testing.T) {
	resp := ResultsResponse{
		Source:     SourceNone,
		Careers:    []domain.CareerMatch{},
		Colleges:   []domain.College{},
		ActionPlan: []domain.ActionStep{},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"none","careers":[],"colleges":[],"actionPlan":[]}`, string(data))
}
