package cli

import (
	"errors"
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/answers"
	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNeedsTerminal is returned when the interactive intake is requested
// without a terminal.
var errNeedsTerminal = errors.New("the interactive intake needs a terminal; use --from FILE")

func newIntakeCmd(app *App) *cobra.Command {
	var from string
	var resume bool

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Take the career assessment",
		Long: "Take the career assessment interactively, or replay a saved answers " +
			"file through the same step checks with --from.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if from != "" {
				return runIntakeFromFile(cmd, app, from)
			}
			if !app.interactive() {
				return errNeedsTerminal
			}

			var rec *domain.AnswerRecord
			if resume {
				latest, err := app.Intake.Latest(ctx)
				if err != nil {
					return err
				}
				rec = latest
			}
			return runTUIWith(ctx, app, rec)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Read answers from a JSON file instead of prompting")
	cmd.Flags().BoolVar(&resume, "resume", false, "Prefill the form with the stored answers")
	cmd.MarkFlagsMutuallyExclusive("from", "resume")

	return cmd
}

// runIntakeFromFile drives the wizard over a prefilled record. Validation
// failures print the blocking step and return an error.
func runIntakeFromFile(cmd *cobra.Command, app *App, path string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	rec, err := answers.LoadFile(path)
	if err != nil {
		return err
	}

	w := intake.New(rec, app.Intake)
	if err := intake.Drive(ctx, w); err != nil {
		var blocked *intake.BlockedError
		if errors.As(err, &blocked) {
			fmt.Fprint(out, formatter.FormatBlocked(blocked))
			app.logger().Warn("intake file incomplete",
				zap.String("path", path),
				zap.String("step", blocked.Step),
				zap.Strings("fields", blocked.Fields.Keys()),
			)
			return fmt.Errorf("answers in %s are incomplete", path)
		}
		return err
	}

	fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Assessment saved."))
	resp, err := app.Results.Results(ctx, contract.ResultsRequest{Answers: w.Record()})
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatResults(resp))
	return nil
}
