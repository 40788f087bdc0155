package answers

import (
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// ValidateRecord checks the enumerated fields of rec. Empty values are
// accepted; required-field checks belong to the wizard steps.
// Returns a slice of all validation errors found.
func ValidateRecord(rec *domain.AnswerRecord) []error {
	var errs []error

	if !rec.Stage.Valid() {
		errs = append(errs, fmt.Errorf("stage: invalid value %q", rec.Stage))
	}

	enums := []struct {
		field string
		value string
		opts  []domain.Option
	}{
		{"stream", rec.Stream, domain.StreamOptions},
		{"preferredLocation", rec.PreferredLocation, domain.LocationOptions},
		{"budgetRange", rec.BudgetRange, domain.BudgetOptions},
		{"timeCommitment", rec.TimeCommitment, domain.TimeCommitmentOptions},
		{"learningStyle", rec.LearningStyle, domain.LearningStyleOptions},
	}
	for _, e := range enums {
		if !domain.IsOption(e.opts, e.value) {
			errs = append(errs, fmt.Errorf("%s: invalid value %q", e.field, e.value))
		}
	}

	if rec.Performance < 0 || rec.Performance > 100 {
		errs = append(errs, fmt.Errorf("performance: %d is outside 0-100", rec.Performance))
	}

	return errs
}
