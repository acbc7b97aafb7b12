// Package levels provides cave level definitions, the YAML catalog format,
// validation and dragon spawn placement.
// This package depends on core but core does not depend on levels.
package levels

import "github.com/vovakirdan/dragoncave/internal/core"

// Definition is one hand-authored cave level.
// Points are (x, yBottom) anchors: an entity built from a point is centered
// on x and stands with its bottom edge at y.
type Definition struct {
	Name      string
	Width     float64 // Total level width in world units
	Platforms []core.RectF
	Treasures []core.Vec2
	Obstacles []core.Vec2
	Dragons   []core.Vec2 // Preferred dragon spawn points, in order
	Exit      core.Vec2
}

// Catalog is an ordered, read-only sequence of levels.
type Catalog struct {
	ID          string
	Name        string
	Description string
	Levels      []Definition
	FilePath    string // Set when the catalog was loaded from disk
}

// Len returns the number of levels.
func (c Catalog) Len() int {
	return len(c.Levels)
}

// Level returns the level at index i.
func (c Catalog) Level(i int) (Definition, bool) {
	if i < 0 || i >= len(c.Levels) {
		return Definition{}, false
	}
	return c.Levels[i], true
}

// Last reports whether i is the final level index.
func (c Catalog) Last(i int) bool {
	return i == len(c.Levels)-1
}
