// Package favorites provides the favorites command for marking tools.
//
// Favorites live in memory for the life of the process. Adds and removes
// given on one command line are applied in order and the resulting list is
// printed; use the shell command to keep favorites across several steps.
package favorites

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
	"github.com/agentstation/aitools/pkg/catalogs"
)

// NewCommand creates the favorites command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs", "fav"},
		GroupID: "core",
		Short:   "Manage your favorite tools",
		Example: `  aitools favorites list
  aitools favorites add 1 3 5
  aitools favorites add 1 3 --remove 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFavorites(cmd, app)
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newRemoveCommand(app))

	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite tools in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFavorites(cmd, app)
		},
	}
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	var remove []string

	cmd := &cobra.Command{
		Use:   "add <tool-id>...",
		Short: "Add tools to favorites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adds, err := cmdutil.ParseToolIDs(args)
			if err != nil {
				return err
			}
			removes, err := cmdutil.ParseToolIDs(remove)
			if err != nil {
				return err
			}
			return apply(cmd, app, adds, removes)
		},
	}

	cmd.Flags().StringSliceVar(&remove, "remove", nil, "Tool ids to remove after adding")

	return cmd
}

func newRemoveCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <tool-id>...",
		Aliases: []string{"rm"},
		Short:   "Remove tools from favorites",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removes, err := cmdutil.ParseToolIDs(args)
			if err != nil {
				return err
			}
			return apply(cmd, app, nil, removes)
		},
	}
}

// apply adds then removes favorites in argument order, reports each
// outcome, and prints the resulting list. Duplicate adds are reported but
// do not fail the command.
func apply(cmd *cobra.Command, app appcontext.Interface, adds, removes []catalogs.ToolID) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	alertWriter := cmdutil.NewAlertWriter(cmd, app)
	var failures []error

	report := func(a *alerts.Alert, err error) error {
		if cmdutil.IsFailure(err) {
			failures = append(failures, err)
		}
		return alertWriter.WriteAlert(a)
	}

	for _, id := range adds {
		err := client.AddFavorite(ctx, id)
		if werr := report(cmdutil.AddFavoriteAlert(client.Catalog(), id, err), err); werr != nil {
			return werr
		}
	}

	for _, id := range removes {
		err := client.RemoveFavorite(ctx, id)
		if werr := report(cmdutil.RemoveFavoriteAlert(client.Catalog(), id, err), err); werr != nil {
			return werr
		}
	}

	if err := printList(cmd, app, client); err != nil {
		return err
	}

	return stderrors.Join(failures...)
}

func printFavorites(cmd *cobra.Command, app appcontext.Interface) error {
	client, err := app.Client()
	if err != nil {
		return err
	}
	return printList(cmd, app, client)
}

func printList(cmd *cobra.Command, app appcontext.Interface, client aitools.Client) error {
	favs, err := client.Favorites(cmd.Context())
	if err != nil {
		return err
	}

	printer := cmdutil.NewPrinter(cmd, app)
	if len(favs) == 0 && printer.Format().IsTable() {
		return cmdutil.NewAlertWriter(cmd, app).WriteAlert(
			alerts.NewInfo("No favorites yet").WithDetails("Add one with: aitools favorites add <tool-id>"))
	}

	return printer.Tools(favs, nil)
}
