package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
	"github.com/agentstation/aitools/internal/cmd/filter"
	"github.com/agentstation/aitools/internal/cmd/globals"
	"github.com/agentstation/aitools/pkg/catalogs"
)

// NewToolsCommand creates the list tools subcommand.
func NewToolsCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tools [tool-id]",
		Aliases: []string{"tool"},
		Short:   "List tools from the catalog",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showTool(cmd, app, args[0])
			}
			return listTools(cmd, app, globals.ParseResources(cmd))
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// listTools lists the tools in a category, narrowed by search and limit.
func listTools(cmd *cobra.Command, app appcontext.Interface, flags *globals.ResourceFlags) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	tools, err := client.Tools(cmd.Context(), flags.Category)
	if err != nil {
		return err
	}

	toolFilter := &filter.ToolFilter{Search: flags.Search, Limit: flags.Limit}
	filtered := toolFilter.Apply(tools)

	app.Logger().Debug().
		Str("category", flags.Category).
		Str("search", flags.Search).
		Int("matched", len(filtered)).
		Msg("Listing tools")

	printer := cmdutil.NewPrinter(cmd, app)
	if len(filtered) == 0 && printer.Format().IsTable() {
		return cmdutil.NewAlertWriter(cmd, app).WriteAlert(alerts.NewInfo("No tools found"))
	}

	return printer.Tools(filtered, nil)
}

// showTool prints one tool in detail.
func showTool(cmd *cobra.Command, app appcontext.Interface, arg string) error {
	id, err := catalogs.ParseToolID(arg)
	if err != nil {
		return err
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	tool, err := client.Catalog().Tool(id)
	if err != nil {
		return err
	}

	return cmdutil.NewPrinter(cmd, app).Tool(tool)
}
