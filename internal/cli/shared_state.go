package cli

import "github.com/Geetanshgarg/future-gaze/internal/domain"

// chromeLines is the number of lines used by the header and status bar.
const chromeLines = 4

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Handoff is the record submitted in this session, if any. The results
	// view prefers it over the stored slot.
	Handoff *domain.AnswerRecord

	Width  int
	Height int
}

// ContentHeight returns the rows left for the active view.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-chromeLines, 5)
}

// ContentWidth returns the usable width, with a floor for unsized terminals.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 80
	}
	return s.Width
}
