// Package registry provides a global registry of built-in clip animations.
// Presets register themselves in init() functions, so the CLI and the
// preview can discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cliprect/internal/anim"
)

// ClipInfo contains metadata about a registered clip.
type ClipInfo struct {
	ID    string
	Title string
	// Ease is the suggested easing curve name for previews.
	Ease string
}

// Factory creates a new, uninitialized clip animation.
// Each call must return a fresh instance since ClipRect is stateful.
type Factory func() *anim.ClipRect

type entry struct {
	info    ClipInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a clip factory to the registry.
// Panics if a clip with the same ID is already registered or f is nil.
func Register(info ClipInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for clip %q", info.ID))
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: clip %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered clips, sorted by ID.
func List() []ClipInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ClipInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered clip.
func Lookup(id string) (ClipInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new clip animation by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (*anim.ClipRect, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown clip %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a clip with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
