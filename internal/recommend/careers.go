// Package recommend derives career, college and action-plan suggestions
// from an answer record using fixed keyword rules and static tables.
package recommend

import (
	"slices"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// MaxCareers caps the career list. Truncation happens in rule order.
const MaxCareers = 3

type rule struct {
	id      domain.RuleID
	matches func(*domain.AnswerRecord) bool
	career  func() domain.CareerMatch
}

var rules = []rule{
	{
		id: domain.RuleTechnology,
		matches: func(r *domain.AnswerRecord) bool {
			return slices.Contains(r.Skills, "Programming") || slices.Contains(r.Interests, "Technology")
		},
		career: func() domain.CareerMatch {
			return domain.CareerMatch{
				Title:           "Software Engineer / Full-Stack Developer",
				Icon:            "💻",
				MatchPercentage: 94,
				Description:     "Build innovative software solutions and applications that impact millions of users worldwide.",
				WhyMatch: []string{
					"Strong programming and analytical skills",
					"High interest in technology and problem-solving",
					"Good academic performance in relevant subjects",
					"Leadership qualities valuable for team projects",
				},
				SalaryRange: "₹8-25 LPA",
				GrowthRate:  "15% annually",
				DemandLevel: domain.DemandHigh,
			}
		},
	},
	{
		id: domain.RuleHealthcare,
		matches: func(r *domain.AnswerRecord) bool {
			return r.Stream == "medical" || slices.Contains(r.Interests, "Healthcare")
		},
		career: func() domain.CareerMatch {
			return domain.CareerMatch{
				Title:           "Medical Doctor / Specialist",
				Icon:            "🏥",
				MatchPercentage: 89,
				Description:     "Diagnose, treat, and care for patients while making a meaningful impact on people's lives.",
				WhyMatch: []string{
					"Strong academic background in medical sciences",
					"Genuine interest in healthcare and helping others",
					"Good communication and empathy skills",
					"Dedication to continuous learning",
				},
				SalaryRange: "₹10-50 LPA",
				GrowthRate:  "12% annually",
				DemandLevel: domain.DemandHigh,
			}
		},
	},
	{
		id: domain.RuleBusiness,
		matches: func(r *domain.AnswerRecord) bool {
			return slices.Contains(r.Interests, "Business") || slices.Contains(r.Skills, "Leadership")
		},
		career: func() domain.CareerMatch {
			return domain.CareerMatch{
				Title:           "Business Analyst / Consultant",
				Icon:            "💼",
				MatchPercentage: 87,
				Description:     "Analyze business processes and provide strategic recommendations to drive growth.",
				WhyMatch: []string{
					"Strong analytical and problem-solving skills",
					"Interest in business and strategy",
					"Good communication and presentation abilities",
					"Leadership potential",
				},
				SalaryRange: "₹6-20 LPA",
				GrowthRate:  "10% annually",
				DemandLevel: domain.DemandHigh,
			}
		},
	},
}

func defaultCareer() domain.CareerMatch {
	return domain.CareerMatch{
		RuleID:          domain.RuleDefault,
		Title:           "Data Analyst",
		Icon:            "📊",
		MatchPercentage: 82,
		Description:     "Transform raw data into actionable insights that drive business decisions.",
		WhyMatch: []string{
			"Strong analytical thinking abilities",
			"Good with numbers and patterns",
			"Detail-oriented approach",
			"Growing field with high demand",
		},
		SalaryRange: "₹5-15 LPA",
		GrowthRate:  "20% annually",
		DemandLevel: domain.DemandHigh,
	}
}

// Careers evaluates the rules in order and returns at most MaxCareers
// matches. A nil record yields an empty slice; a record that matches no rule
// yields the single default career.
func Careers(rec *domain.AnswerRecord) []domain.CareerMatch {
	if rec == nil {
		return []domain.CareerMatch{}
	}

	out := make([]domain.CareerMatch, 0, MaxCareers)
	for _, r := range rules {
		if r.matches(rec) {
			m := r.career()
			m.RuleID = r.id
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultCareer())
	}
	if len(out) > MaxCareers {
		out = out[:MaxCareers]
	}
	return out
}

// Rules returns the rule IDs in evaluation order.
func Rules() []domain.RuleID {
	ids := make([]domain.RuleID, len(rules))
	for i, r := range rules {
		ids[i] = r.id
	}
	return ids
}
