package cli

import (
	"fmt"

	"github.com/Geetanshgarg/future-gaze/internal/catalog"
	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/spf13/cobra"
)

func newCareersCmd(app *App) *cobra.Command {
	var req contract.CareersRequest

	cmd := &cobra.Command{
		Use:   "careers [category]",
		Short: "Browse careers in a category",
		Long:  "Browse careers in a category. Without a category, list the categories.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				slugs, err := app.Catalog.Categories(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatCategories(slugs))
				return nil
			}

			req.Category = args[0]
			resp, err := app.Catalog.Careers(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCareers(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Search, "search", "", "Match title, description or skills")
	cmd.Flags().Var(newChoiceValue(&req.SortBy, catalog.SortRelevance,
		catalog.SortRelevance, catalog.SortTitle, catalog.SortGrowth),
		"sort", "Sort by relevance, title or growth")
	cmd.Flags().Var(newChoiceValue(&req.Demand, catalog.FilterAll,
		catalog.FilterAll, "High", "Medium", "Low"),
		"demand", "Filter by demand: all, High, Medium or Low")

	return cmd
}
