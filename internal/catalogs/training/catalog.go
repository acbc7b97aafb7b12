// Package training registers a short two-level practice catalog.
package training

import (
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
	"github.com/vovakirdan/dragoncave/internal/registry"
)

// ID is the registry key of the training catalog.
const ID = "training"

// Catalog returns the training catalog. The first room fits on one screen,
// so the camera never moves there.
func Catalog() levels.Catalog {
	return levels.Catalog{
		ID:          ID,
		Name:        "Training Cave",
		Description: "Two small rooms to practice jumping and dropping rocks",
		Levels: []levels.Definition{
			{
				Name:  "Practice Room",
				Width: 800,
				Platforms: []core.RectF{
					core.R(0, 560, 800, 40),
					core.R(300, 450, 120, 20),
					core.R(520, 380, 100, 20),
				},
				Treasures: []core.Vec2{
					core.V(360, 450),
					core.V(570, 380),
					core.V(450, 560),
				},
				Obstacles: []core.Vec2{
					core.V(480, 560),
				},
				Dragons: []core.Vec2{
					core.V(650, 560),
				},
				Exit: core.V(760, 560),
			},
			{
				Name:  "Long Hall",
				Width: 1600,
				Platforms: []core.RectF{
					core.R(0, 560, 700, 40),
					core.R(800, 560, 800, 40),
					core.R(650, 460, 200, 20),
					core.R(1100, 420, 150, 20),
				},
				Treasures: []core.Vec2{
					core.V(750, 460),
					core.V(1175, 420),
					core.V(1400, 560),
				},
				Obstacles: []core.Vec2{
					core.V(1000, 560),
				},
				Dragons: []core.Vec2{
					core.V(1300, 560),
				},
				Exit: core.V(1550, 560),
			},
		},
	}
}

func init() {
	registry.Register(ID, Catalog)
}
