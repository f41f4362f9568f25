// Package list provides the list command for browsing the tool catalog.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/internal/appcontext"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List tools and categories from the catalog",
		Long: `List displays resources from the AI tools catalog.

Available subcommands:
  tools       - AI tools, optionally filtered by category or search text
  categories  - Distinct tool categories`,
		Example: `  aitools list tools                           # List every tool
  aitools list tools 3                         # Show details for tool 3
  aitools list tools --category "code assistant"
  aitools list tools --search video --limit 2
  aitools list categories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewToolsCommand(app))
	cmd.AddCommand(NewCategoriesCommand(app))

	return cmd
}
