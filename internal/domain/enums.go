package domain

// Stage is the discriminant that selects the intake step sequence.
type Stage string

const (
	StageUnset       Stage = ""
	StageSchool      Stage = "school"
	StageTwelfthPass Stage = "12th-pass"
	StageCollege     Stage = "college"
)

// AllStages lists every Stage value, including unset.
var AllStages = []Stage{StageUnset, StageSchool, StageTwelfthPass, StageCollege}

// Valid reports whether s is one of the known stage values (unset included).
func (s Stage) Valid() bool {
	switch s {
	case StageUnset, StageSchool, StageTwelfthPass, StageCollege:
		return true
	}
	return false
}

// Label returns the human-readable stage title.
func (s Stage) Label() string {
	switch s {
	case StageSchool:
		return "School Student (10th/11th/12th)"
	case StageTwelfthPass:
		return "12th Pass"
	case StageCollege:
		return "College Student"
	default:
		return "Not selected"
	}
}

// Description returns the one-line explanation shown next to the stage option.
func (s Stage) Description() string {
	switch s {
	case StageSchool:
		return "Currently studying in school"
	case StageTwelfthPass:
		return "Completed 12th grade, looking for next steps"
	case StageCollege:
		return "Currently pursuing undergraduate/graduate studies"
	default:
		return ""
	}
}

type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type ActionCategory string

const (
	CategoryEducation  ActionCategory = "Education"
	CategorySkills     ActionCategory = "Skills"
	CategoryExperience ActionCategory = "Experience"
	CategoryNetworking ActionCategory = "Networking"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// StreamOptions is the canonical set of academic streams.
var StreamOptions = []Option{
	{"science", "Science (PCM/PCB)"},
	{"commerce", "Commerce"},
	{"arts", "Arts/Humanities"},
	{"engineering", "Engineering"},
	{"medical", "Medical"},
	{"business", "Business"},
	{"other", "Other"},
}

var LocationOptions = []Option{
	{"metro", "Metro Cities (Mumbai, Delhi, Bangalore)"},
	{"tier2", "Tier 2 Cities (Pune, Hyderabad, Chennai)"},
	{"hometown", "Hometown/Local Area"},
	{"abroad", "International"},
	{"flexible", "Flexible/Open to relocate"},
}

var BudgetOptions = []Option{
	{"low", "Under ₹2 Lakhs"},
	{"medium", "₹2-5 Lakhs"},
	{"high", "₹5-10 Lakhs"},
	{"premium", "Above ₹10 Lakhs"},
	{"flexible", "Budget is flexible"},
}

var TimeCommitmentOptions = []Option{
	{"short", "Short-term (6 months - 1 year)"},
	{"medium", "Medium-term (2-3 years)"},
	{"long", "Long-term (4+ years)"},
	{"flexible", "Flexible timeline"},
}

var LearningStyleOptions = []Option{
	{"visual", "Visual (diagrams, charts, videos)"},
	{"auditory", "Auditory (lectures, discussions)"},
	{"kinesthetic", "Hands-on (practical, experiments)"},
	{"reading", "Reading/Writing focused"},
	{"mixed", "Mixed approach"},
}

// SkillOptions is the fixed skill tag vocabulary offered by the intake form.
var SkillOptions = []string{
	"Programming", "Mathematics", "Writing", "Public Speaking", "Leadership",
	"Problem Solving", "Creativity", "Analysis", "Communication", "Teamwork",
	"Research", "Design", "Sales", "Teaching", "Organization",
	"Critical Thinking", "Time Management", "Adaptability",
}

// InterestOptions is the fixed interest tag vocabulary offered by the intake form.
var InterestOptions = []string{
	"Technology", "Healthcare", "Business", "Education", "Arts", "Sports",
	"Environment", "Social Work", "Finance", "Media", "Science", "Travel",
	"Food", "Fashion", "Gaming", "Music", "Photography", "Writing",
}

// OptionLabel returns the label for value within opts, or value itself when
// it is not one of the options.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// IsOption reports whether value is empty or one of opts.
func IsOption(opts []Option, value string) bool {
	if value == "" {
		return true
	}
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
