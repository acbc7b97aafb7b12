package levels

import (
	"math/rand"

	"github.com/vovakirdan/dragoncave/internal/core"
)

// SpawnRules controls where dragons may be placed in a level.
type SpawnRules struct {
	MinFraction float64 // Dragons start at or past this fraction of the level width
	GroundLevel float64 // y of the ground used for random placement
	EdgeMargin  float64 // Random ground placement keeps this far from both ends
}

// DragonSpawns returns n (x, yBottom) anchors for dragons in d.
//
// Catalog spawn points at or past the minimum x are used first, in order.
// Remaining dragons go on the tops of qualifying platforms, cycling through
// them. Only when no platform qualifies are they dropped at random ground
// positions past the minimum x, drawn from rng.
func DragonSpawns(d Definition, n int, rules SpawnRules, rng *rand.Rand) []core.Vec2 {
	if n <= 0 {
		return nil
	}
	minX := d.Width * rules.MinFraction

	spawns := make([]core.Vec2, 0, n)
	for _, p := range d.Dragons {
		if len(spawns) == n {
			break
		}
		if p.X >= minX {
			spawns = append(spawns, p)
		}
	}

	remaining := n - len(spawns)
	if remaining == 0 {
		return spawns
	}

	var tops []core.Vec2
	for _, p := range d.Platforms {
		if p.CenterX() >= minX {
			tops = append(tops, core.V(p.CenterX(), p.Top()))
		}
	}

	if len(tops) > 0 {
		for i := range remaining {
			spawns = append(spawns, tops[i%len(tops)])
		}
		return spawns
	}

	for range remaining {
		spawns = append(spawns, core.V(randomGroundX(d.Width, minX, rules.EdgeMargin, rng), rules.GroundLevel))
	}
	return spawns
}

// randomGroundX picks an integer x in [max(margin, minX), width-margin].
// A range that collapses falls back to the level middle, pushed past minX.
func randomGroundX(width, minX, margin float64, rng *rand.Rand) float64 {
	start := max(int(margin), int(minX))
	end := int(width - margin)

	if start >= end {
		x := int(width) / 2
		if float64(x) < minX {
			if minX < float64(end) {
				x = int(minX + (float64(end)-minX)/2)
			} else {
				x = int(minX)
			}
		}
		return float64(x)
	}
	return float64(start + rng.Intn(end-start+1))
}
