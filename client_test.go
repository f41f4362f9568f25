package aitools

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
	"github.com/agentstation/aitools/pkg/favorites"
	"github.com/agentstation/aitools/pkg/logging"
)

func testTools() []catalogs.Tool {
	return []catalogs.Tool{
		{ID: 1, Name: "ChatGPT", Category: "Conversational AI", Description: "chat", URL: "https://chat.openai.com", Pricing: "Freemium", Features: []string{"a", "b"}},
		{ID: 2, Name: "Midjourney", Category: "Image Generation", Description: "images", Pricing: "Paid"},
		{ID: 3, Name: "Runway", Category: "Video Generation", Description: "video", Pricing: "Freemium"},
		{ID: 4, Name: "Pika", Category: "video generation", Description: "video", Pricing: "Free"},
	}
}

func newTestClient(t *testing.T, opts ...Option) Client {
	t.Helper()
	base := []Option{
		WithCatalog(catalogs.NewTestCatalog(t, testTools()...)),
		WithLogger(logging.NewNopLogger()),
	}
	c, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func toolIDs(tools []catalogs.Tool) []catalogs.ToolID {
	ids := make([]catalogs.ToolID, len(tools))
	for i, tool := range tools {
		ids[i] = tool.ID
	}
	return ids
}

func TestNew(t *testing.T) {
	t.Run("embedded catalog by default", func(t *testing.T) {
		c, err := New(WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)
		assert.Equal(t, 12, c.Catalog().Len())

		favs, err := c.Favorites(context.Background())
		require.NoError(t, err)
		assert.Empty(t, favs)
	})

	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.yaml")
		data := []byte("tools:\n  - id: 7\n    name: Solo\n    category: Misc\n")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		c, err := New(WithCatalogFile(path), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)
		assert.Equal(t, 1, c.Catalog().Len())
		assert.True(t, c.Catalog().Contains(7))
	})

	t.Run("missing catalog file", func(t *testing.T) {
		_, err := New(WithCatalogFile(filepath.Join(t.TempDir(), "nope.yaml")))
		require.Error(t, err)
		var resErr *errors.ResourceError
		assert.ErrorAs(t, err, &resErr)
	})

	t.Run("explicit catalog wins over file", func(t *testing.T) {
		c := newTestClient(t, WithCatalogFile("/does/not/exist.yaml"))
		assert.Equal(t, 4, c.Catalog().Len())
	})

	t.Run("shared registry", func(t *testing.T) {
		catalog := catalogs.NewTestCatalog(t, testTools()...)
		registry := favorites.New(catalog)
		require.NoError(t, registry.Add(3))

		c, err := New(WithCatalog(catalog), WithFavorites(registry), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)

		favs, err := c.Favorites(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []catalogs.ToolID{3}, toolIDs(favs))
	})
}

func TestTools(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	tests := []struct {
		name     string
		category string
		want     []catalogs.ToolID
	}{
		{"all", "", []catalogs.ToolID{1, 2, 3, 4}},
		{"exact", "Image Generation", []catalogs.ToolID{2}},
		{"case folded", "VIDEO GENERATION", []catalogs.ToolID{3, 4}},
		{"unknown", "Robotics", []catalogs.ToolID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools, err := c.Tools(ctx, tt.category)
			require.NoError(t, err)
			require.NotNil(t, tools)
			if diff := cmp.Diff(tt.want, toolIDs(tools)); diff != "" {
				t.Errorf("Tools(%q) ids mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestToolsReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	tools, err := c.Tools(ctx, "")
	require.NoError(t, err)
	tools[0].Name = "changed"
	tools[0].Features[0] = "changed"

	again, err := c.Tools(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ChatGPT", again[0].Name)
	assert.Equal(t, "a", again[0].Features[0])
}

func TestCategories(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t,
		[]string{"Conversational AI", "Image Generation", "Video Generation", "video generation"},
		c.Categories())
}

func TestCategoryCounts(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	t.Run("all tools", func(t *testing.T) {
		counts, err := c.CategoryCounts(ctx, "")
		require.NoError(t, err)
		want := []catalogs.CategoryCount{
			{Category: "Conversational AI", Count: 1},
			{Category: "Image Generation", Count: 1},
			{Category: "Video Generation", Count: 1},
			{Category: "video generation", Count: 1},
		}
		assert.Equal(t, want, counts)
		assert.Equal(t, 4, catalogs.Total(counts))
	})

	t.Run("filter folds but grouping does not", func(t *testing.T) {
		counts, err := c.CategoryCounts(ctx, "video generation")
		require.NoError(t, err)
		assert.Len(t, counts, 2)
	})

	t.Run("empty selection", func(t *testing.T) {
		counts, err := c.CategoryCounts(ctx, "Robotics")
		require.NoError(t, err)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})
}

func TestFavoritesLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.AddFavorite(ctx, 3))
	require.NoError(t, c.AddFavorite(ctx, 1))

	favs, err := c.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalogs.ToolID{1, 3}, toolIDs(favs), "favorites follow catalog order")

	err = c.AddFavorite(ctx, 3)
	assert.True(t, errors.IsAlreadyExists(err))

	err = c.AddFavorite(ctx, 99)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, c.RemoveFavorite(ctx, 3))
	require.NoError(t, c.RemoveFavorite(ctx, 3))
	require.NoError(t, c.RemoveFavorite(ctx, 99))

	favs, err = c.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalogs.ToolID{1}, toolIDs(favs))

	require.NoError(t, c.AddFavorite(ctx, 3), "re-adding after removal succeeds")
}

func TestConcurrentAddFavorite(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := c.AddFavorite(ctx, 2)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.IsAlreadyExists(err):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, dupes)

	favs, err := c.Favorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestLatency(t *testing.T) {
	latency := Latency{
		Tools:          20 * time.Millisecond,
		Favorites:      20 * time.Millisecond,
		AddFavorite:    20 * time.Millisecond,
		RemoveFavorite: 20 * time.Millisecond,
	}

	t.Run("operations wait", func(t *testing.T) {
		c := newTestClient(t, WithLatency(latency))
		start := time.Now()
		_, err := c.Tools(context.Background(), "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), latency.Tools)
	})

	t.Run("categories never wait", func(t *testing.T) {
		c := newTestClient(t, WithLatency(Latency{Tools: time.Hour}))
		done := make(chan []string, 1)
		go func() { done <- c.Categories() }()
		select {
		case cats := <-done:
			assert.Len(t, cats, 4)
		case <-time.After(time.Second):
			t.Fatal("Categories blocked")
		}
	})

	t.Run("cancellation during wait", func(t *testing.T) {
		c := newTestClient(t, WithLatency(Latency{AddFavorite: time.Hour}))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := c.AddFavorite(ctx, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCanceled(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		favs, err := c.Favorites(context.Background())
		require.NoError(t, err)
		assert.Empty(t, favs, "canceled add must not apply")
	})

	t.Run("already canceled context", func(t *testing.T) {
		c := newTestClient(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Tools(ctx, "")
		assert.ErrorIs(t, err, context.Canceled)
		err = c.RemoveFavorite(ctx, 1)
		assert.True(t, errors.IsCanceled(err))
	})

	t.Run("concurrent calls overlap", func(t *testing.T) {
		c := newTestClient(t, WithLatency(latency))
		ctx := context.Background()

		start := time.Now()
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = c.Tools(ctx, "")
			}()
		}
		wg.Wait()
		assert.Less(t, time.Since(start), 4*latency.Tools+time.Second)
	})
}

func TestDefaultLatency(t *testing.T) {
	l := DefaultLatency()
	assert.Equal(t, 500*time.Millisecond, l.Tools)
	assert.Equal(t, 300*time.Millisecond, l.Favorites)
	assert.Equal(t, 200*time.Millisecond, l.AddFavorite)
	assert.Equal(t, 200*time.Millisecond, l.RemoveFavorite)
}

func TestClientLogging(t *testing.T) {
	logger := logging.NewTestLogger(t)
	c, err := New(
		WithCatalog(catalogs.NewTestCatalog(t, testTools()...)),
		WithLogger(logger.Logger),
	)
	require.NoError(t, err)

	require.NoError(t, c.AddFavorite(context.Background(), 1))
	assert.True(t, logger.Contains("Favorite added"))
	assert.True(t, logger.Contains(`"tool_id":1`))
}
