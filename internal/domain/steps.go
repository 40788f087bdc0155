package domain

// StepRole identifies what a wizard step asks for. Validation is keyed by
// role, not index, because the index-to-role mapping depends on the Stage.
type StepRole int

const (
	RoleStageSelection StepRole = iota
	RolePersonalInfo
	RoleContactDetails
	RoleAcademicDetails
	RoleExamResults
	RoleCurrentPerformance
	RoleSkillsInterests
	RolePreferences
	RoleGoals
	RoleGoalsAndChanges
)

var stepLabels = map[StepRole]string{
	RoleStageSelection:     "Stage Selection",
	RolePersonalInfo:       "Personal Info",
	RoleContactDetails:     "Contact Details",
	RoleAcademicDetails:    "Academic Details",
	RoleExamResults:        "Exam Results",
	RoleCurrentPerformance: "Current Performance",
	RoleSkillsInterests:    "Skills & Interests",
	RolePreferences:        "Preferences",
	RoleGoals:              "Goals",
	RoleGoalsAndChanges:    "Goals & Changes",
}

// Label returns the step title shown in the progress header.
func (r StepRole) Label() string {
	if l, ok := stepLabels[r]; ok {
		return l
	}
	return "Unknown"
}

func (r StepRole) String() string { return r.Label() }

var baseSteps = []StepRole{RoleStageSelection, RolePersonalInfo, RoleContactDetails}

// stepTable maps every selected stage to the steps that follow the base steps.
// StageUnset is deliberately absent: it falls back to the base steps only.
var stepTable = map[Stage][]StepRole{
	StageSchool: {
		RoleAcademicDetails, RoleSkillsInterests, RolePreferences, RoleGoals,
	},
	StageTwelfthPass: {
		RoleAcademicDetails, RoleExamResults, RoleSkillsInterests, RolePreferences, RoleGoals,
	},
	StageCollege: {
		RoleAcademicDetails, RoleCurrentPerformance, RoleSkillsInterests, RolePreferences, RoleGoalsAndChanges,
	},
}

// StepSequence returns the ordered steps for a stage. The result is a fresh
// slice on every call.
func StepSequence(s Stage) []StepRole {
	tail := stepTable[s]
	seq := make([]StepRole, 0, len(baseSteps)+len(tail))
	seq = append(seq, baseSteps...)
	return append(seq, tail...)
}

// StepLabels returns the labels of StepSequence(s).
func StepLabels(s Stage) []string {
	seq := StepSequence(s)
	labels := make([]string, len(seq))
	for i, r := range seq {
		labels[i] = r.Label()
	}
	return labels
}
