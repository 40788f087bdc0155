package formatter

import (
	"fmt"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

// FormatResults renders the profile summary, career matches, colleges and
// action plan. A response with no answers renders the empty state.
func FormatResults(resp *contract.ResultsResponse) string {
	if resp == nil || resp.Source == contract.SourceNone || resp.Profile == nil {
		return FormatNoResults()
	}

	var b strings.Builder
	b.WriteString(formatProfile(resp.Profile))
	b.WriteString("\n")

	b.WriteString(Header("Career Matches"))
	b.WriteString("\n")
	for i, c := range resp.Careers {
		b.WriteString(formatCareerMatch(i+1, c))
		b.WriteString("\n")
	}

	b.WriteString(Header("Recommended Colleges"))
	b.WriteString("\n")
	b.WriteString(formatColleges(resp.Colleges))
	b.WriteString("\n")

	b.WriteString(Header("Action Plan"))
	b.WriteString("\n")
	b.WriteString(formatActionPlan(resp.ActionPlan))
	return b.String()
}

// FormatNoResults is the empty state shown before any intake is completed.
func FormatNoResults() string {
	return RenderBox("No results yet",
		"Complete the career assessment to see your personalised matches.\n"+
			Dim("Run: futuregaze intake")) + "\n"
}

func formatProfile(p *contract.ProfileSummary) string {
	lines := []string{
		fmt.Sprintf("%s %s", Dim("Name:     "), Bold(ValueOrDash(p.Name))),
		fmt.Sprintf("%s %s", Dim("Stage:    "), p.StageLabel),
		fmt.Sprintf("%s %s", Dim("Stream:   "), ValueOrDash(p.StreamLabel)),
		fmt.Sprintf("%s %s", Dim("Skills:   "), JoinOrDash(p.Skills)),
		fmt.Sprintf("%s %s", Dim("Interests:"), JoinOrDash(p.Interests)),
	}
	if p.CareerGoals != "" {
		lines = append(lines, fmt.Sprintf("%s %s", Dim("Goals:    "), p.CareerGoals))
	}
	if p.HasPerformance {
		lines = append(lines, fmt.Sprintf("%s %s", Dim("Grades:   "), RenderProgress(p.Performance, 20)))
	}
	return RenderBox("Your Profile", strings.Join(lines, "\n")) + "\n"
}

func formatCareerMatch(rank int, c domain.CareerMatch) string {
	var b strings.Builder
	match := MatchStyle(c.MatchPercentage).Render(fmt.Sprintf("%d%% match", c.MatchPercentage))
	fmt.Fprintf(&b, "%s %s %s  %s\n", Dim(fmt.Sprintf("%d.", rank)), c.Icon, Bold(c.Title), match)
	fmt.Fprintf(&b, "   %s\n", c.Description)
	fmt.Fprintf(&b, "   %s %s  %s %s  %s\n",
		Dim("Salary"), c.SalaryRange,
		Dim("Growth"), StyleGreen.Render(c.GrowthRate),
		DemandBadge(c.DemandLevel))
	if len(c.WhyMatch) > 0 {
		fmt.Fprintf(&b, "   %s\n", Dim("Why it fits:"))
		b.WriteString(Bullets(c.WhyMatch, 5))
	}
	return b.String()
}

func formatColleges(colleges []domain.College) string {
	headers := []string{"COLLEGE", "COURSE", "RANKING", "FEES", "LOCATION", "ADMISSION", "MATCH"}
	rows := make([][]string, 0, len(colleges))
	for _, c := range colleges {
		rows = append(rows, []string{
			Bold(c.Name),
			c.Course,
			c.Ranking,
			c.Fees,
			c.Location,
			c.AdmissionRate,
			MatchStyle(c.MatchScore).Render(fmt.Sprintf("%d%%", c.MatchScore)),
		})
	}
	return RenderTable(headers, rows)
}

func formatActionPlan(steps []domain.ActionStep) string {
	var b strings.Builder
	for i, s := range steps {
		check := Dim("☐")
		if s.Completed {
			check = StyleGreen.Render("☑")
		}
		fmt.Fprintf(&b, "%s %s %s  %s  %s\n",
			check, Dim(fmt.Sprintf("%d.", i+1)), Bold(s.Title),
			PriorityBadge(s.Priority), StylePurple.Render(string(s.Category)))
		fmt.Fprintf(&b, "     %s %s\n", s.Description, Dim("("+s.Timeline+")"))
	}
	return b.String()
}
