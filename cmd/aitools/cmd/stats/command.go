// Package stats provides the stats command: per-category tool counts for
// the analytics view.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
	"github.com/agentstation/aitools/pkg/catalogs"
)

// NewCommand creates the stats command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"analytics"},
		GroupID: "core",
		Short:   "Show how many tools each category has",
		Long: `Stats counts tools per category in the order each category first
appears in the catalog. With --category only the matching tools are
counted; matching ignores case but counting does not.`,
		Example: `  aitools stats
  aitools stats --category "video generation"
  aitools stats -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			counts, err := client.CategoryCounts(cmd.Context(), category)
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Int("categories", len(counts)).
				Int("tools", catalogs.Total(counts)).
				Msg("Aggregated categories")

			return cmdutil.NewPrinter(cmd, app).Counts(counts)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only count tools in this category")

	return cmd
}
