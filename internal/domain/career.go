package domain

// RuleID names the recommendation rule that produced a CareerMatch.
type RuleID string

const (
	RuleTechnology RuleID = "technology"
	RuleHealthcare RuleID = "healthcare"
	RuleBusiness   RuleID = "business"
	RuleDefault    RuleID = "default"
)

// CareerMatch is a rule-selected recommendation. MatchPercentage is a literal
// attached to the rule, not a score computed from the answers.
type CareerMatch struct {
	RuleID          RuleID      `json:"ruleId"`
	Title           string      `json:"title"`
	Icon            string      `json:"icon"`
	MatchPercentage int         `json:"matchPercentage"`
	Description     string      `json:"description"`
	WhyMatch        []string    `json:"whyMatch"`
	SalaryRange     string      `json:"salaryRange"`
	GrowthRate      string      `json:"growthRate"`
	DemandLevel     DemandLevel `json:"demandLevel"`
}

type College struct {
	Name          string `json:"name"`
	Course        string `json:"course"`
	Ranking       string `json:"ranking"`
	Fees          string `json:"fees"`
	Location      string `json:"location"`
	AdmissionRate string `json:"admissionRate"`
	Link          string `json:"link"`
	MatchScore    int    `json:"matchScore"`
}

type ActionStep struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Timeline    string         `json:"timeline"`
	Priority    Priority       `json:"priority"`
	Category    ActionCategory `json:"category"`
	Completed   bool           `json:"completed"`
}

// Career is one row of a career category listing.
type Career struct {
	ID                string      `yaml:"id" json:"id"`
	Title             string      `yaml:"title" json:"title"`
	Description       string      `yaml:"description" json:"description"`
	AverageSalary     string      `yaml:"average_salary" json:"averageSalary"`
	GrowthRate        string      `yaml:"growth_rate" json:"growthRate"`
	DemandLevel       DemandLevel `yaml:"demand_level" json:"demandLevel"`
	EducationRequired string      `yaml:"education_required" json:"educationRequired"`
	Skills            []string    `yaml:"skills" json:"skills"`
	WorkEnvironment   string      `yaml:"work_environment" json:"workEnvironment"`
	JobOutlook        string      `yaml:"job_outlook" json:"jobOutlook"`
	MatchScore        int         `yaml:"match_score" json:"matchScore"`
}

// CareerCategory groups careers under a URL slug such as "technology".
type CareerCategory struct {
	Slug         string   `yaml:"slug" json:"slug"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	TotalCareers int      `yaml:"total_careers" json:"totalCareers"`
	Careers      []Career `yaml:"careers" json:"careers"`
}
