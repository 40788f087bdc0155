package cli

import (
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/spf13/cobra"
)

func newStepsCmd(app *App) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the assessment steps for a stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := domain.Stage(stage)
			if !s.Valid() {
				return fmt.Errorf("unknown stage %q (want school, 12th-pass or college)", stage)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSteps(s, domain.StepLabels(s)))
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Stage: school, 12th-pass or college (blank for none)")

	return cmd
}
