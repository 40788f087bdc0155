package formatter

import (
	"fmt"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/contract"
)

// FormatCareers renders one career category listing.
func FormatCareers(resp *contract.CareersResponse) string {
	var b strings.Builder
	b.WriteString(Header(resp.Name))
	b.WriteString("\n")
	b.WriteString(Dim(resp.Description))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("Showing %d of %d careers", len(resp.Careers), resp.Available)))

	if len(resp.Careers) == 0 {
		b.WriteString("No careers match these filters.\n")
		return b.String()
	}

	for _, c := range resp.Careers {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Bold(c.Title),
			MatchStyle(c.MatchScore).Render(fmt.Sprintf("%d%% match", c.MatchScore)),
			DemandBadge(c.DemandLevel))
		fmt.Fprintf(&b, "  %s\n", c.Description)
		fmt.Fprintf(&b, "  %s %s  %s %s\n",
			Dim("Salary"), c.AverageSalary,
			Dim("Growth"), StyleGreen.Render(c.GrowthRate))
		fmt.Fprintf(&b, "  %s %s\n", Dim("Education"), c.EducationRequired)
		fmt.Fprintf(&b, "  %s %s\n", Dim("Skills"), JoinOrDash(c.Skills))
		if c.WorkEnvironment != "" {
			fmt.Fprintf(&b, "  %s %s\n", Dim("Environment"), c.WorkEnvironment)
		}
		if c.JobOutlook != "" {
			fmt.Fprintf(&b, "  %s %s\n", Dim("Outlook"), c.JobOutlook)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCategories renders the list of known category slugs.
func FormatCategories(slugs []string) string {
	var b strings.Builder
	b.WriteString(Header("Career Categories"))
	b.WriteString("\n")
	b.WriteString(Bullets(slugs, 2))
	return b.String()
}
