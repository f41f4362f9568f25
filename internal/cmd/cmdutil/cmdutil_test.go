package cmdutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/globals"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
	"github.com/agentstation/aitools/pkg/logging"
)

func newClient(t *testing.T) aitools.Client {
	t.Helper()
	c, err := aitools.New(
		aitools.WithCatalog(catalogs.NewTestCatalog(t,
			catalogs.Tool{ID: 1, Name: "ChatGPT", Category: "Conversational AI"},
			catalogs.Tool{ID: 2, Name: "Midjourney", Category: "Image Generation"},
		)),
		aitools.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return c
}

func TestParseToolIDs(t *testing.T) {
	ids, err := ParseToolIDs([]string{"1", " 12 "})
	require.NoError(t, err)
	assert.Equal(t, []catalogs.ToolID{1, 12}, ids)

	_, err = ParseToolIDs([]string{"1", "abc"})
	assert.True(t, errors.IsValidationError(err))
}

func TestFavoriteMarker(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	require.NoError(t, c.AddFavorite(ctx, 2))

	isFav, err := FavoriteMarker(ctx, c)
	require.NoError(t, err)
	assert.True(t, isFav(2))
	assert.False(t, isFav(1))
}

func TestAddFavoriteAlert(t *testing.T) {
	cat := newClient(t).Catalog()

	tests := []struct {
		name  string
		id    catalogs.ToolID
		err   error
		level alerts.Level
		msg   string
	}{
		{"added", 1, nil, alerts.LevelSuccess, "Added ChatGPT to favorites!"},
		{"duplicate", 1, errors.NewAlreadyExistsError("favorite", "1"), alerts.LevelInfo, "ChatGPT is already in your favorites!"},
		{"unknown", 9, errors.NewNotFoundError("tool", "9"), alerts.LevelError, "No tool with ID 9"},
		{"canceled", 2, errors.NewCanceledError("add favorite", context.Canceled), alerts.LevelError, "Failed to add to favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AddFavoriteAlert(cat, tt.id, tt.err)
			assert.Equal(t, tt.level, a.Level)
			assert.Equal(t, tt.msg, a.Message)
		})
	}
}

func TestRemoveFavoriteAlert(t *testing.T) {
	cat := newClient(t).Catalog()
	assert.Equal(t, "Removed Midjourney from favorites", RemoveFavoriteAlert(cat, 2, nil).Message)
	assert.Equal(t, "Removed tool 7 from favorites", RemoveFavoriteAlert(cat, 7, nil).Message)
	assert.Equal(t, alerts.LevelError, RemoveFavoriteAlert(cat, 2, context.Canceled).Level)
}

func TestFavoriteAlertSubject(t *testing.T) {
	cat := newClient(t).Catalog()

	a := AddFavoriteAlert(cat, 1, nil)
	require.NotNil(t, a.Subject)
	assert.Equal(t, alerts.Subject{ID: 1, Name: "ChatGPT"}, *a.Subject)

	a = AddFavoriteAlert(cat, 9, errors.NewNotFoundError("tool", "9"))
	require.NotNil(t, a.Subject)
	assert.Equal(t, alerts.Subject{ID: 9}, *a.Subject)
}

func TestIsFailure(t *testing.T) {
	assert.False(t, IsFailure(nil))
	assert.False(t, IsFailure(errors.NewAlreadyExistsError("favorite", "1")))
	assert.True(t, IsFailure(errors.NewNotFoundError("tool", "1")))
}

func TestNewAlertWriterQuiet(t *testing.T) {
	root := &cobra.Command{Use: "aitools"}
	globals.AddFlags(root)
	require.NoError(t, root.PersistentFlags().Set("quiet", "true"))

	var stderr bytes.Buffer
	root.SetErr(&stderr)

	w := NewAlertWriter(root, appcontext.NewMock(nil, "table"))
	require.NoError(t, w.WriteAlert(alerts.NewInfo("hidden")))
	require.NoError(t, w.WriteAlert(alerts.NewError("shown")))
	assert.Equal(t, "✗ shown\n", stderr.String())
}
