package ticks

import (
	"sort"
	"sync"
)

// Source supplies a labeled option list. It is owned by the host; the
// slider only reads it.
type Source interface {
	Options() []Option
}

// StaticSource is a fixed option list.
type StaticSource []Option

// Options returns the list itself.
func (s StaticSource) Options() []Option {
	return s
}

// Registry resolves option lists by identifier.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register stores src under id, replacing any previous entry.
func (r *Registry) Register(id string, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[id] = src
}

// Lookup returns the source registered under id.
func (r *Registry) Lookup(id string) (Source, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[id]
	return src, ok
}

// Resolve builds a Set from the source registered under id. An empty id, a
// nil registry or an unknown id all yield the empty Set.
func (r *Registry) Resolve(id string) Set {
	if id == "" {
		return Set{}
	}
	src, ok := r.Lookup(id)
	if !ok || src == nil {
		return Set{}
	}
	return New(src.Options())
}

// Names returns the registered identifiers sorted alphabetically.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sources))
	for id := range r.sources {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}
