package intake

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// Field keys used in FieldErrors. They match the JSON names of the record.
const (
	FieldStage        = "stage"
	FieldName         = "name"
	FieldAge          = "age"
	FieldEmail        = "email"
	FieldClass10Marks = "class10Marks"
	FieldStream       = "stream"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a field key to its validation message.
type FieldErrors map[string]string

// Keys returns the failing field keys in sorted order.
func (fe FieldErrors) Keys() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateStep checks the fields the given step role requires. Roles after
// the academic step have no required fields.
func ValidateStep(role domain.StepRole, rec *domain.AnswerRecord) FieldErrors {
	errs := FieldErrors{}

	switch role {
	case domain.RoleStageSelection:
		if rec.Stage == domain.StageUnset {
			errs[FieldStage] = "Please select your current stage"
		}
	case domain.RolePersonalInfo:
		if strings.TrimSpace(rec.Name) == "" {
			errs[FieldName] = "Name is required"
		}
		if rec.Age == "" {
			errs[FieldAge] = "Age is required"
		}
	case domain.RoleContactDetails:
		email := strings.TrimSpace(rec.Email)
		if email == "" {
			errs[FieldEmail] = "Email is required"
		} else if !emailPattern.MatchString(email) {
			errs[FieldEmail] = "Invalid email format"
		}
	case domain.RoleAcademicDetails:
		if rec.Class10Marks == "" {
			errs[FieldClass10Marks] = "10th marks are required"
		}
		if rec.Stream == "" {
			errs[FieldStream] = "Stream selection is required"
		}
	}

	return errs
}
