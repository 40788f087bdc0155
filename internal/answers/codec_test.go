package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_PreservesRecord(t *testing.T) {
	rec := testutil.NewTestAnswers(
		testutil.WithStage(domain.StageCollege),
		testutil.WithSkills("Programming", "Design"),
		testutil.WithPerformance(61),
	)
	rec.GoalShift = "design"

	data, err := Encode(rec)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("decoded record differs (-want +got):\n%s", diff)
	}
}

func TestEncode_UsesStoredKeyNames(t *testing.T) {
	rec := testutil.NewTestAnswers()
	data, err := Encode(rec)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"class10Marks":"92"`)
	assert.Contains(t, s, `"preferredLocation":"metro"`)
	assert.Contains(t, s, `"performance":75`)
	assert.NotContains(t, s, "examResults")
}

func TestEncode_NilRecord(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)
}

func TestDecode_MissingFieldsKeepDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"stage":"school","name":"Asha"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.StageSchool, got.Stage)
	assert.Equal(t, domain.DefaultPerformance, got.Performance)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, []string{}, got.Interests)
}

func TestDecode_NullLists(t *testing.T) {
	got, err := Decode([]byte(`{"skills":null,"interests":null}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Skills)
	assert.NotNil(t, got.Interests)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":           `{"stage":`,
		"not an object":    `[1,2,3]`,
		"unknown stage":    `{"stage":"graduate"}`,
		"skills not array": `{"skills":"Programming"}`,
		"performance type": `{"performance":"high"}`,
		"performance high": `{"performance":140}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadFile(t *testing.T) {
	rec, err := LoadFile(filepath.Join("testdata", "college.json"))
	require.NoError(t, err)
	assert.Equal(t, domain.StageCollege, rec.Stage)
	assert.Equal(t, []string{"Programming", "Leadership"}, rec.Skills)
	assert.Equal(t, 68, rec.Performance)
	assert.Empty(t, ValidateRecord(rec))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading answers file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"stage": 3}`), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrMalformed)

	choices := filepath.Join(t.TempDir(), "choices.json")
	require.NoError(t, os.WriteFile(choices,
		[]byte(`{"stage":"school","stream":"astrology","budgetRange":"free","learningStyle":"telepathy"}`), 0o644))
	rec, err := LoadFile(choices)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), `stream: invalid value "astrology"`)
	assert.Contains(t, err.Error(), `budgetRange: invalid value "free"`)
	assert.Contains(t, err.Error(), `learningStyle: invalid value "telepathy"`)
}

func TestValidateRecord(t *testing.T) {
	rec := testutil.NewTestAnswers()
	assert.Empty(t, ValidateRecord(rec))

	rec.Stage = "graduate"
	rec.Stream = "law"
	rec.BudgetRange = "cheap"
	rec.Performance = 101
	errs := ValidateRecord(rec)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "stage")
	assert.Contains(t, errs[1].Error(), "stream")
	assert.Contains(t, errs[2].Error(), "budgetRange")
	assert.Contains(t, errs[3].Error(), "performance")
}
