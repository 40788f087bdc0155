package recommend

import (
	"sort"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// Colleges returns the college table ordered by match score, highest first.
// The result does not depend on the answers.
func Colleges() []domain.College {
	colleges := []domain.College{
		{
			Name:          "Indian Institute of Technology (IIT) Delhi",
			Course:        "B.Tech Computer Science",
			Ranking:       "#1 Engineering College",
			Fees:          "₹2.5L per year",
			Location:      "New Delhi",
			AdmissionRate: "2.5%",
			Link:          "#",
			MatchScore:    95,
		},
		{
			Name:          "Birla Institute of Technology and Science (BITS) Pilani",
			Course:        "B.E. Computer Science",
			Ranking:       "#3 Private Engineering College",
			Fees:          "₹4.5L per year",
			Location:      "Pilani, Rajasthan",
			AdmissionRate: "8%",
			Link:          "#",
			MatchScore:    92,
		},
		{
			Name:          "Delhi Technological University (DTU)",
			Course:        "B.Tech Software Engineering",
			Ranking:       "#5 State Engineering College",
			Fees:          "₹1.5L per year",
			Location:      "New Delhi",
			AdmissionRate: "12%",
			Link:          "#",
			MatchScore:    88,
		},
		{
			Name:          "Vellore Institute of Technology (VIT)",
			Course:        "B.Tech Information Technology",
			Ranking:       "#8 Private Engineering College",
			Fees:          "₹3.2L per year",
			Location:      "Vellore, Tamil Nadu",
			AdmissionRate: "15%",
			Link:          "#",
			MatchScore:    85,
		},
		{
			Name:          "Manipal Institute of Technology",
			Course:        "B.Tech Computer Engineering",
			Ranking:       "#12 Private Engineering College",
			Fees:          "₹3.8L per year",
			Location:      "Manipal, Karnataka",
			AdmissionRate: "18%",
			Link:          "#",
			MatchScore:    82,
		},
	}

	sort.SliceStable(colleges, func(i, j int) bool {
		return colleges[i].MatchScore > colleges[j].MatchScore
	})
	return colleges
}

// ActionPlan returns the action steps in their fixed order.
func ActionPlan() []domain.ActionStep {
	return []domain.ActionStep{
		{
			Title:       "Prepare for JEE Main & Advanced",
			Description: "Focus on Physics, Chemistry, and Mathematics. Join coaching or online courses. Target score: 95+ percentile",
			Timeline:    "Next 6 months",
			Priority:    domain.PriorityHigh,
			Category:    domain.CategoryEducation,
		},
		{
			Title:       "Master Programming Fundamentals",
			Description: "Learn Python, Java, and data structures. Complete online courses and build projects",
			Timeline:    "3-4 months",
			Priority:    domain.PriorityHigh,
			Category:    domain.CategorySkills,
		},
		{
			Title:       "Build a Strong Portfolio",
			Description: "Create GitHub profile, develop 3-5 projects, contribute to open source",
			Timeline:    "Ongoing",
			Priority:    domain.PriorityMedium,
			Category:    domain.CategoryExperience,
		},
		{
			Title:       "Develop Problem-Solving Skills",
			Description: "Practice coding problems on LeetCode, HackerRank, and CodeChef daily",
			Timeline:    "Daily practice",
			Priority:    domain.PriorityHigh,
			Category:    domain.CategorySkills,
		},
		{
			Title:       "Network with Industry Professionals",
			Description: "Join tech communities, attend webinars, connect on LinkedIn",
			Timeline:    "2-3 months",
			Priority:    domain.PriorityMedium,
			Category:    domain.CategoryNetworking,
		},
		{
			Title:       "Gain Practical Experience",
			Description: "Apply for internships, participate in hackathons, freelance projects",
			Timeline:    "6-12 months",
			Priority:    domain.PriorityMedium,
			Category:    domain.CategoryExperience,
		},
	}
}
