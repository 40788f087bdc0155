package formatter

import (
	"fmt"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
)

const dashboardBarWidth = 16

// FormatDashboard renders the greeting followed by the progress snapshot.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", StyleHeader.Render(fmt.Sprintf("Welcome back, %s!", resp.DisplayName)))
	if resp.HasProfile {
		fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%s · %d assessment(s) taken", resp.Stage.Label(), resp.AssessmentsTaken)))
	} else {
		fmt.Fprintf(&b, "%s\n\n", Dim("Take the career assessment to personalise your dashboard."))
	}

	snap := resp.Snapshot
	if snap == nil {
		return b.String()
	}

	p := snap.Progress
	stats := []string{
		fmt.Sprintf("%s %s", Dim("Progress"), RenderProgress(p.Percent(), dashboardBarWidth)),
		fmt.Sprintf("%s %d days", Dim("Streak  "), p.Streak),
		fmt.Sprintf("%s %d", Dim("Points  "), p.Points),
		fmt.Sprintf("%s %d", Dim("Level   "), p.Level),
		fmt.Sprintf("%s %s", Dim("Goal    "), p.CurrentGoal),
	}
	b.WriteString(RenderBox("Your Journey", strings.Join(stats, "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Upcoming Tasks"))
	b.WriteString("\n")
	taskRows := make([][]string, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		taskRows = append(taskRows, []string{t.Title, t.DueDate, PriorityBadge(t.Priority)})
	}
	b.WriteString(RenderTable([]string{"TASK", "DUE", "PRIORITY"}, taskRows))
	b.WriteString("\n")

	b.WriteString(Header("Skill Development"))
	b.WriteString("\n")
	for _, s := range snap.Skills {
		fmt.Fprintf(&b, "%-22s %s %s\n", s.Skill, RenderProgress(s.Progress, dashboardBarWidth), Dim(fmt.Sprintf("target %d%%", s.Target)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Courses"))
	b.WriteString("\n")
	for _, c := range snap.Courses {
		fmt.Fprintf(&b, "%s %-34s %s\n", courseMarker(c.Status), c.Title, RenderProgress(c.Progress, dashboardBarWidth))
	}
	b.WriteString("\n")

	b.WriteString(Header("Goals"))
	b.WriteString("\n")
	for _, g := range snap.Goals {
		fmt.Fprintf(&b, "%s  %s  %s\n", Bold(g.Title), PriorityBadge(g.Priority), Dim("due "+g.Deadline))
		fmt.Fprintf(&b, "  %s\n  %s\n", g.Description, RenderProgress(g.Progress, dashboardBarWidth))
	}
	b.WriteString("\n")

	b.WriteString(Header("Achievements"))
	b.WriteString("\n")
	for _, a := range snap.Achievements {
		if a.Unlocked {
			fmt.Fprintf(&b, "%s %s %s %s\n", a.Icon, Bold(a.Title), Dim(a.Description), StyleGreen.Render(a.Date))
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", Dim("🔒"), Dim(a.Title), Dim(a.Description))
		}
	}
	b.WriteString("\n")

	b.WriteString(Header("Recent Activity"))
	b.WriteString("\n")
	for _, a := range snap.Activities {
		fmt.Fprintf(&b, "%s %s %s\n", activityMarker(a.Type), a.Title, Dim("· "+a.Date))
		fmt.Fprintf(&b, "  %s\n", Dim(a.Description))
	}
	b.WriteString("\n")

	b.WriteString(Header("Community"))
	b.WriteString("\n")
	for _, g := range snap.StudyGroups {
		fmt.Fprintf(&b, "%s %s %s\n", StyleBlue.Render("◆"), g.Name, Dim(fmt.Sprintf("%d members · %s", g.Members, g.Activity)))
	}
	for _, d := range snap.Discussions {
		fmt.Fprintf(&b, "%s %s %s\n", StylePurple.Render("◇"), d.Title, Dim(fmt.Sprintf("by %s · %d replies · %s", d.Author, d.Replies, d.Time)))
	}
	return b.String()
}

func courseMarker(s domain.CourseStatus) string {
	switch s {
	case domain.CourseCompleted:
		return StyleGreen.Render("✔")
	case domain.CourseInProgress:
		return StyleYellow.Render("●")
	default:
		return StyleDim.Render("○")
	}
}

func activityMarker(t domain.ActivityType) string {
	switch t {
	case domain.ActivityAssessment:
		return StyleBlue.Render("◎")
	case domain.ActivityGoal:
		return StyleGreen.Render("◉")
	case domain.ActivityAchievement:
		return StyleYellow.Render("★")
	case domain.ActivityMilestone:
		return StylePurple.Render("◆")
	default:
		return StyleDim.Render("•")
	}
}
