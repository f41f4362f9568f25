// Package cmdutil provides helpers shared by the aitools commands: output
// wiring, tool id parsing and user-facing favorite messages.
package cmdutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/globals"
	"github.com/agentstation/aitools/internal/cmd/output"
	"github.com/agentstation/aitools/internal/cmd/table"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
)

// NewPrinter returns a printer for the command's stdout in the app's format.
func NewPrinter(cmd *cobra.Command, app appcontext.Interface) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()))
}

// NewAlertWriter returns a writer for user-facing messages on the command's
// stderr. Quiet mode drops everything but errors.
func NewAlertWriter(cmd *cobra.Command, app appcontext.Interface) alerts.Writer {
	flags, _ := globals.Parse(cmd)

	w := alerts.NewFormatWriter(cmd.ErrOrStderr(), string(output.DetectFormat(app.OutputFormat())))
	if flags != nil && flags.NoColor {
		w = w.WithConfig(alerts.WriterConfig{ShowDetails: true})
	}
	if flags == nil || !flags.Quiet {
		return w
	}
	return alerts.Filter(w, (*alerts.Alert).IsError)
}

// ParseToolIDs parses positional tool id arguments.
func ParseToolIDs(args []string) ([]catalogs.ToolID, error) {
	ids := make([]catalogs.ToolID, 0, len(args))
	for _, arg := range args {
		id, err := catalogs.ParseToolID(strings.TrimSpace(arg))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FavoriteMarker returns an IsFavorite backed by the client's current
// favorites.
func FavoriteMarker(ctx context.Context, client aitools.FavoritesManager) (table.IsFavorite, error) {
	favs, err := client.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[catalogs.ToolID]struct{}, len(favs))
	for _, f := range favs {
		set[f.ID] = struct{}{}
	}
	return func(id catalogs.ToolID) bool {
		_, ok := set[id]
		return ok
	}, nil
}

// AddFavoriteAlert turns the outcome of an add into a user-facing message.
// A duplicate add is informational, not a failure.
func AddFavoriteAlert(catalog catalogs.Reader, id catalogs.ToolID, err error) *alerts.Alert {
	name, known := toolName(catalog, id)
	var a *alerts.Alert
	switch {
	case err == nil:
		a = alerts.NewSuccess(fmt.Sprintf("Added %s to favorites!", name))
	case errors.IsAlreadyExists(err):
		a = alerts.NewInfo(fmt.Sprintf("%s is already in your favorites!", name))
	case errors.IsNotFound(err):
		a = alerts.NewError(fmt.Sprintf("No tool with ID %s", id))
	default:
		a = alerts.NewError("Failed to add to favorites").WithError(err)
	}
	return about(a, id, name, known)
}

// RemoveFavoriteAlert turns the outcome of a remove into a user-facing message.
func RemoveFavoriteAlert(catalog catalogs.Reader, id catalogs.ToolID, err error) *alerts.Alert {
	name, known := toolName(catalog, id)
	if err != nil {
		return about(alerts.NewError("Failed to remove from favorites").WithError(err), id, name, known)
	}
	return about(alerts.NewSuccess(fmt.Sprintf("Removed %s from favorites", name)), id, name, known)
}

// IsFailure reports whether an add/remove outcome should fail the command.
func IsFailure(err error) bool {
	return err != nil && !errors.IsAlreadyExists(err)
}

func toolName(catalog catalogs.Reader, id catalogs.ToolID) (string, bool) {
	if tool, err := catalog.Tool(id); err == nil {
		return tool.Name, true
	}
	return "tool " + id.String(), false
}

func about(a *alerts.Alert, id catalogs.ToolID, name string, known bool) *alerts.Alert {
	if !known {
		name = ""
	}
	return a.About(id, name)
}
