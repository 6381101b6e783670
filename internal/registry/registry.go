// Package registry provides a global registry of high-score store backends.
// Backends register themselves in init() functions, allowing the CLI to pick
// one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yafb/internal/core"
)

// Store persists the high-score table.
type Store interface {
	// Load reads the full table. A store that has never been written
	// returns an empty table and no error.
	Load() ([]core.ScoreEntry, error)

	// Save replaces the stored table with entries, which are already
	// ordered highest score first.
	Save(entries []core.ScoreEntry) error

	// Close releases any resources held by the store.
	Close() error
}

// Factory opens a store at path.
type Factory func(path string, logger *log.Logger) (Store, error)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	DefaultPath string
}

type backend struct {
	factory     Factory
	defaultPath string
}

var (
	backends = make(map[string]backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, defaultPath string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: store %q already registered", name))
	}
	backends[name] = backend{factory: f, defaultPath: defaultPath}
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, b := range backends {
		result = append(result, BackendInfo{Name: name, DefaultPath: b.defaultPath})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open opens the named backend. An empty path uses the backend's default.
// Returns an error if the name is not registered.
func Open(name, path string, logger *log.Logger) (Store, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown store %q", name)
	}
	if path == "" {
		path = b.defaultPath
	}
	return b.factory(path, logger)
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
