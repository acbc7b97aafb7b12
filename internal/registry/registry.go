// Package registry provides a global registry for level catalogs.
// Catalog packages register themselves in init() functions, allowing the
// platform to discover and load catalogs without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dragoncave/internal/levels"
)

// CatalogInfo contains metadata about a registered catalog.
type CatalogInfo struct {
	ID          string
	Name        string
	Description string
	Levels      int
}

// Factory is a function that builds a catalog.
// Catalogs are immutable data; a factory returns a fresh copy so callers
// can never alias each other's slices.
type Factory func() levels.Catalog

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]CatalogInfo)
	mu        sync.RWMutex
)

// Register adds a catalog factory to the registry.
// Typically called from a catalog package's init() function.
// Panics if a catalog with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: catalog %q already registered", id))
	}

	factories[id] = f

	// Get metadata by building a temporary instance
	c := f()
	infos[id] = CatalogInfo{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		Levels:      c.Len(),
	}
}

// List returns information about all registered catalogs, sorted by ID.
func List() []CatalogInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CatalogInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a catalog by its ID.
// Returns an error if the catalog ID is not registered.
func Create(id string) (levels.Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return levels.Catalog{}, fmt.Errorf("registry: unknown catalog %q", id)
	}

	c := f()
	c.ID = id
	return c, nil
}

// Exists checks if a catalog with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
