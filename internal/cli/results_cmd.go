package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/spf13/cobra"
)

func newResultsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show career matches for the stored assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Results.Results(cmd.Context(), contract.ResultsRequest{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("encoding results: %w", err)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatResults(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the results as JSON")

	return cmd
}
