package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
)

// FormatFieldErrors renders validation messages in field-key order.
func FormatFieldErrors(errs intake.FieldErrors) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, k := range errs.Keys() {
		fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("✖"), StyleRed.Render(errs[k]))
	}
	return b.String()
}

// FormatBlocked explains which step of a file-driven intake refused to advance.
func FormatBlocked(be *intake.BlockedError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("Step "+fmt.Sprint(be.Index+1)), Bold(be.Step))
	for _, k := range be.Fields.Keys() {
		fmt.Fprintf(&b, "  %s %s\n", Dim(k+":"), StyleRed.Render(be.Fields[k]))
	}
	return b.String()
}

// FormatSteps lists the step sequence for a stage.
func FormatSteps(stage domain.Stage, labels []string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Steps for %s", stage.Label())))
	b.WriteString("\n")
	for i, l := range labels {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), l)
	}
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d steps", len(labels))))
	return b.String()
}

// FormatHistory renders past submissions newest first.
func FormatHistory(entries []contract.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No assessments submitted yet.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprintf("#%d", e.Seq)),
			Bold(ValueOrDash(e.Name)),
			e.Stage.Label(),
			ValueOrDash(e.TopCareer),
			HumanTimestampFrom(e.SubmittedAt, now),
		})
	}
	return RenderTable([]string{"#", "NAME", "STAGE", "TOP MATCH", "SUBMITTED"}, rows)
}
