package cli

import (
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and runtime settings used by CLI commands and the TUI.
type App struct {
	Intake    service.IntakeService
	Results   service.ResultsService
	Catalog   service.CatalogService
	Dashboard service.DashboardService

	// Transition is how long the wizard marks itself as animating after a
	// step change. Zero disables it.
	Transition time.Duration

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	Logger *zap.Logger
	Now    func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "futuregaze" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// intake TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "futuregaze",
		Short:         "Career guidance intake and recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newIntakeCmd(app),
		newStepsCmd(app),
		newResultsCmd(app),
		newCareersCmd(app),
		newDashboardCmd(app),
		newHistoryCmd(app),
		newResetCmd(app),
	)

	return root
}
