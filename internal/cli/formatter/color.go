package formatter

import (
	"fmt"
	"strings"

	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DemandStyle maps a demand level to its color: green for High, yellow for
// Medium and red for Low.
func DemandStyle(level domain.DemandLevel) lipgloss.Style {
	switch level {
	case domain.DemandHigh:
		return StyleGreen
	case domain.DemandMedium:
		return StyleYellow
	case domain.DemandLow:
		return StyleRed
	default:
		return StyleDim
	}
}

// DemandBadge renders a demand level as "● High demand".
func DemandBadge(level domain.DemandLevel) string {
	if level == "" {
		return StyleDim.Render("● unknown")
	}
	return DemandStyle(level).Render(fmt.Sprintf("● %s demand", level))
}

// PriorityBadge renders an action or task priority.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityMedium:
		return StyleYellow.Render("● Medium")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// MatchStyle colors a match percentage: 90 and above green, 80 and above
// yellow, anything lower dim.
func MatchStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 90:
		return StyleGreen
	case pct >= 80:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
