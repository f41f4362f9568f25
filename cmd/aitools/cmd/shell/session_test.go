package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/output"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
	"github.com/agentstation/aitools/pkg/logging"
)

type harness struct {
	session *Session
	client  aitools.Client
	out     bytes.Buffer
	msgs    bytes.Buffer
}

func newHarness(t *testing.T, opts ...aitools.Option) *harness {
	t.Helper()

	base := []aitools.Option{
		aitools.WithCatalog(catalogs.NewTestCatalog(t,
			catalogs.Tool{ID: 1, Name: "ChatGPT", Category: "Conversational AI", Description: "chat assistant"},
			catalogs.Tool{ID: 2, Name: "Runway ML", Category: "Video Generation", Description: "video editing"},
			catalogs.Tool{ID: 3, Name: "Synthesia", Category: "Video Generation", Description: "avatars"},
		)),
		aitools.WithLogger(logging.NewNopLogger()),
	}
	client, err := aitools.New(append(base, opts...)...)
	require.NoError(t, err)

	h := &harness{client: client}
	h.session = NewSession(
		client,
		output.NewPrinter(&h.out, output.FormatJSON),
		alerts.NewWriterTo(&h.msgs),
		&h.out,
		logging.NewNopLogger(),
	)
	return h
}

func (h *harness) exec(t *testing.T, line string) {
	t.Helper()
	quit, err := h.session.Exec(context.Background(), line)
	require.NoError(t, err)
	assert.False(t, quit)
}

func TestSessionFavorites(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	h.exec(t, "add 3 1")
	h.exec(t, "add 3")
	h.exec(t, "rm 1")

	msgs := h.msgs.String()
	assert.Contains(t, msgs, "Added Synthesia to favorites!")
	assert.Contains(t, msgs, "Added ChatGPT to favorites!")
	assert.Contains(t, msgs, "Synthesia is already in your favorites!")
	assert.Contains(t, msgs, "Removed ChatGPT from favorites")

	favs, err := h.client.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Synthesia", favs[0].Name)
}

func TestSessionToolsKeepsCategory(t *testing.T) {
	h := newHarness(t)

	h.exec(t, "tools video generation")
	assert.Contains(t, h.out.String(), "Runway ML")
	assert.NotContains(t, h.out.String(), "ChatGPT")

	h.out.Reset()
	h.exec(t, "search avatars")
	assert.Contains(t, h.out.String(), "Synthesia")
	assert.NotContains(t, h.out.String(), "Runway ML")

	h.out.Reset()
	h.exec(t, "search chat")
	assert.Empty(t, h.out.String(), "search stays within the selected category")
	assert.Contains(t, h.msgs.String(), "No tools found")

	h.out.Reset()
	h.exec(t, "tools")
	assert.Contains(t, h.out.String(), "ChatGPT")
}

func TestSessionBadInput(t *testing.T) {
	h := newHarness(t)

	h.exec(t, "add")
	h.exec(t, "add x")
	h.exec(t, "frobnicate")
	h.exec(t, "   ")

	msgs := h.msgs.String()
	assert.Contains(t, msgs, "at least one tool id is required")
	assert.Contains(t, msgs, "must be an integer")
	assert.Contains(t, msgs, `Unknown command "frobnicate"`)
}

func TestSessionRun(t *testing.T) {
	h := newHarness(t)

	in := strings.NewReader("stats\nhelp\nexit\nadd 1\n")
	require.NoError(t, h.session.Run(context.Background(), in))

	assert.Contains(t, h.msgs.String(), "3 tools in 2 categories, 0 favorites")
	assert.Contains(t, h.out.String(), `"category": "Video Generation"`)
	assert.Contains(t, h.out.String(), "Commands:")
	assert.NotContains(t, h.msgs.String(), "Added ChatGPT")
}

func TestSessionRunEndOfInput(t *testing.T) {
	h := newHarness(t)
	h.session.Prompt = "> "

	require.NoError(t, h.session.Run(context.Background(), strings.NewReader("categories")))
	assert.True(t, strings.HasPrefix(h.out.String(), "> "))
	assert.Contains(t, h.out.String(), "Conversational AI")
}

func TestSessionCanceled(t *testing.T) {
	h := newHarness(t, aitools.WithLatency(aitools.Latency{AddFavorite: time.Hour}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := h.session.Exec(ctx, "add 1")
	assert.True(t, errors.IsCanceled(err))
}
