package cli

import (
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

type replaceViewMsg struct {
	view View
}

// intakeCompleteMsg carries the submitted record from the intake view so the
// results screen can render it without reading storage back.
type intakeCompleteMsg struct {
	record *domain.AnswerRecord
}

// intakeCancelledMsg is sent when the user abandons the intake.
type intakeCancelledMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}
