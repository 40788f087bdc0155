package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// runTUI runs the interactive intake in the alternate screen.
func runTUI(ctx context.Context, app *App) error {
	return runTUIWith(ctx, app, nil)
}

// runTUIWith starts the intake from rec, which may carry answers from a
// previous run.
func runTUIWith(ctx context.Context, app *App, rec *domain.AnswerRecord) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := app.logger()
	log.Info("starting tui")

	p := tea.NewProgram(newAppModel(app, rec), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}

	if m, ok := final.(appModel); ok && m.cancelled {
		fmt.Fprintln(os.Stdout, formatter.Dim("Cancelled."))
	}
	log.Info("tui exited", zap.Bool("submitted", finalHandoff(final) != nil))
	return nil
}

func finalHandoff(m tea.Model) *domain.AnswerRecord {
	if am, ok := m.(appModel); ok {
		return am.state.Handoff
	}
	return nil
}
