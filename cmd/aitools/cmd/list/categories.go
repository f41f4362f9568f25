package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
)

// NewCategoriesCommand creates the list categories subcommand.
func NewCategoriesCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List distinct tool categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			return cmdutil.NewPrinter(cmd, app).Categories(client.Categories())
		},
	}
}
