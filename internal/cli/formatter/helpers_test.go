package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"seconds", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"older", time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC), "Dec 1, 2025"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Softw…", Truncate("Software Engineer", 6))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestValueOrDashAndJoinOrDash(t *testing.T) {
	assert.Equal(t, "Asha", ValueOrDash("Asha"))
	assert.Equal(t, "--", stripANSI(ValueOrDash("   ")))
	assert.Equal(t, "--", stripANSI(JoinOrDash(nil)))
	assert.Equal(t, "Writing, Design", JoinOrDash([]string{"Writing", "Design"}))
}

func TestBullets(t *testing.T) {
	got := stripANSI(Bullets([]string{"one", "two"}, 2))
	assert.Equal(t, "  • one\n  • two\n", got)
}

func TestDemandBadge(t *testing.T) {
	assert.Equal(t, "● High demand", stripANSI(DemandBadge(domain.DemandHigh)))
	assert.Equal(t, "● unknown", stripANSI(DemandBadge("")))
}

func TestPriorityBadge(t *testing.T) {
	assert.Equal(t, "▲ High", stripANSI(PriorityBadge(domain.PriorityHigh)))
	assert.Equal(t, "● Medium", stripANSI(PriorityBadge(domain.PriorityMedium)))
	assert.Equal(t, "▽ Low", stripANSI(PriorityBadge(domain.PriorityLow)))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "CAREER MATCHES\n──────────────", stripANSI(Header("Career Matches")))
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{{"IIT Delhi", "95%"}, {"BITS", "88%"}},
	))
	want := "NAME       SCORE\n" +
		"─────────  ─────\n" +
		"IIT Delhi  95%\n" +
		"BITS       88%\n"
	assert.Equal(t, want, got)
	assert.Empty(t, RenderTable(nil, nil))
}
