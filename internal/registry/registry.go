// Package registry maps terminal backend names to the functions that run a
// game on them. Backends register themselves in init() functions, so the
// CLI can pick one by name without importing it directly.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Runner plays one game to completion on a terminal backend.
type Runner func(ctx context.Context, game *tetris.Game, opts engine.Options) (engine.Result, error)

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

type backend struct {
	info BackendInfo
	run  Runner
}

var (
	backends = make(map[string]backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, run Runner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = backend{
		info: BackendInfo{Name: name, Description: description},
		run:  run,
	}
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, b := range backends {
		result = append(result, b.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the runner of a backend.
func Lookup(name string) (Runner, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	return b.run, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
