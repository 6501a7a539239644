package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry indexes renderers by output format name ("vanilla", "llmstxt").
// The orchestrator seeds one with the built-in formats; callers register
// their own renderers alongside them.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Renderer)}
}

// Register adds a renderer under its Name. Registering a second renderer
// with the same name is an error so format names stay unambiguous.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: cannot register a nil renderer")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer has no format name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.formats[name]; taken {
		return fmt.Errorf("render: output format %q already registered", name)
	}
	r.formats[name] = renderer
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer for an output format. Unknown formats report the
// registered ones so CLI users see what to pass instead.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.formats[name]
	if !ok {
		if len(r.formats) == 0 {
			return nil, fmt.Errorf("render: unknown output format %q (none registered)", name)
		}
		return nil, fmt.Errorf("render: unknown output format %q (registered: %s)",
			name, strings.Join(r.names(), ", "))
	}
	return renderer, nil
}

// MustGet is Get for wiring that cannot proceed without the renderer; it
// panics on error.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered format names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

// Has reports whether name is a registered output format.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.formats[name]
	return ok
}

// names assumes the caller holds at least a read lock.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
