package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a whole percentage.
// The bar is green from 66%, yellow from 33% and red below.
func RenderProgress(pct int, width int) string {
	pct = min(max(pct, 0), 100)
	width = max(width, 2)

	filled := min(pct*width/100, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}

// RenderStepTrail renders the step labels with the current one highlighted
// and the finished ones checked.
func RenderStepTrail(labels []string, current int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		switch {
		case i < current:
			parts[i] = StyleGreen.Render("✔ " + l)
		case i == current:
			parts[i] = StyleHeader.Render("● " + l)
		default:
			parts[i] = StyleDim.Render("○ " + l)
		}
	}
	return strings.Join(parts, StyleDim.Render("  ›  "))
}
