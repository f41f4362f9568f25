// Package favorites tracks which catalog tools the current user has marked
// as favorites. The registry stores ids only; tool data is joined back from
// the catalog on read. State is process-local and starts empty.
package favorites

import (
	"slices"
	"sync"

	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
)

// Lookup is the catalog access a registry needs.
type Lookup interface {
	Tool(id catalogs.ToolID) (catalogs.Tool, error)
	List() []catalogs.Tool
}

// Registry is a concurrency-safe set of favorite tool ids.
type Registry struct {
	mu     sync.RWMutex
	lookup Lookup
	ids    []catalogs.ToolID
	set    map[catalogs.ToolID]struct{}
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity preallocates room for n favorites.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		r.ids = make([]catalogs.ToolID, 0, n)
		r.set = make(map[catalogs.ToolID]struct{}, n)
	}
}

// New creates an empty registry backed by lookup.
func New(lookup Lookup, opts ...Option) *Registry {
	r := &Registry{
		lookup: lookup,
		set:    make(map[catalogs.ToolID]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add marks a tool as favorite. It fails with a NotFoundError when the
// catalog has no such tool and with an AlreadyExistsError when the tool is
// already a favorite. The check and the insert happen under one lock.
func (r *Registry) Add(id catalogs.ToolID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup.Tool(id); err != nil {
		return err
	}
	if _, exists := r.set[id]; exists {
		return errors.NewAlreadyExistsError("favorite", id.String())
	}
	r.set[id] = struct{}{}
	r.ids = append(r.ids, id)
	return nil
}

// Remove unmarks a tool. Removing an id that is not a favorite is a no-op.
// It reports whether anything was removed.
func (r *Registry) Remove(id catalogs.ToolID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.set[id]; !exists {
		return false
	}
	delete(r.set, id)
	r.ids = slices.DeleteFunc(r.ids, func(v catalogs.ToolID) bool { return v == id })
	return true
}

// Contains reports whether id is a favorite.
func (r *Registry) Contains(id catalogs.ToolID) bool {
	r.mu.RLock()
	_, ok := r.set[id]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of favorites.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.ids)
	r.mu.RUnlock()
	return n
}

// IDs returns the favorite ids in insertion order.
func (r *Registry) IDs() []catalogs.ToolID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ids)
}

// List returns the favorite tools, joined from the catalog, in catalog order.
func (r *Registry) List() []catalogs.Tool {
	r.mu.RLock()
	set := make(map[catalogs.ToolID]struct{}, len(r.set))
	for id := range r.set {
		set[id] = struct{}{}
	}
	r.mu.RUnlock()

	tools := make([]catalogs.Tool, 0, len(set))
	if len(set) == 0 {
		return tools
	}
	for _, t := range r.lookup.List() {
		if _, ok := set[t.ID]; ok {
			tools = append(tools, t)
		}
	}
	return tools
}

// Clear removes every favorite.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = r.ids[:0]
	clear(r.set)
}
