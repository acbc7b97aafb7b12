// Package classic registers the ten hand-authored Dragon Cave levels.
package classic

import (
	"github.com/vovakirdan/dragoncave/internal/levels"
	"github.com/vovakirdan/dragoncave/internal/registry"
)

// ID is the registry key of the classic catalog.
const ID = "classic"

// Catalog returns the classic catalog.
func Catalog() levels.Catalog {
	return levels.Catalog{
		ID:          ID,
		Name:        "Dragon Cave",
		Description: "Ten caves, from a single sleepy dragon to three guarding the exit",
		Levels:      caveLevels(),
	}
}

func init() {
	registry.Register(ID, Catalog)
}
