package aitools

import (
	"sync"

	"github.com/agentstation/aitools/pkg/catalogs"
)

// Hook function types for favorite events
type (
	// FavoriteAddedHook is called after a tool becomes a favorite
	FavoriteAddedHook func(tool catalogs.Tool)

	// FavoriteRemovedHook is called after a favorite is removed
	FavoriteRemovedHook func(id catalogs.ToolID)
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnFavoriteAdded registers a callback for added favorites
	OnFavoriteAdded(FavoriteAddedHook)

	// OnFavoriteRemoved registers a callback for removed favorites
	OnFavoriteRemoved(FavoriteRemovedHook)
}

// hooks manages event callbacks for favorite changes
type hooks struct {
	mu                sync.RWMutex
	onFavoriteAdded   []FavoriteAddedHook
	onFavoriteRemoved []FavoriteRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnFavoriteAdded registers a callback for added favorites
func (h *hooks) OnFavoriteAdded(fn FavoriteAddedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFavoriteAdded = append(h.onFavoriteAdded, fn)
}

// OnFavoriteRemoved registers a callback for removed favorites
func (h *hooks) OnFavoriteRemoved(fn FavoriteRemovedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFavoriteRemoved = append(h.onFavoriteRemoved, fn)
}

// triggerFavoriteAdded runs the added hooks. Called outside the registry lock
// so callbacks may query the client.
func (h *hooks) triggerFavoriteAdded(tool catalogs.Tool) {
	h.mu.RLock()
	fns := append([]FavoriteAddedHook(nil), h.onFavoriteAdded...)
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(tool.Copy())
	}
}

// triggerFavoriteRemoved runs the removed hooks.
func (h *hooks) triggerFavoriteRemoved(id catalogs.ToolID) {
	h.mu.RLock()
	fns := append([]FavoriteRemovedHook(nil), h.onFavoriteRemoved...)
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(id)
	}
}
