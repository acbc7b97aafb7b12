// Package game implements the Dragon Cave simulation: caver physics, the
// dragon state machine, fireballs, dropped rocks, camera scrolling and
// level progression. It is pure and deterministic; the platform layer owns
// input, timing, audio and the terminal.
package game

import "github.com/vovakirdan/dragoncave/internal/core"

// Kind discriminates the entity variants of a level.
type Kind int

const (
	KindPlatform Kind = iota
	KindObstacle
	KindTreasure
	KindBigTreasure
	KindExit
	KindRock
	KindFireball
	KindPlayer
	KindDragon
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindObstacle:
		return "obstacle"
	case KindTreasure:
		return "treasure"
	case KindBigTreasure:
		return "big_treasure"
	case KindExit:
		return "exit"
	case KindRock:
		return "rock"
	case KindFireball:
		return "fireball"
	case KindPlayer:
		return "player"
	case KindDragon:
		return "dragon"
	default:
		return "unknown"
	}
}

// Env is the per-tick view of the world handed to moving entities.
// Entities never keep it past the call that received it.
type Env interface {
	// Now returns the simulation clock reading for this tick.
	Now() Tick
	// Solids returns platforms and obstacles, the surfaces that block movement.
	Solids() []core.RectF
	// Obstacles returns only obstacles, which also block fireballs.
	Obstacles() []core.RectF
	// PlayerPos returns the caver's position (bottom center).
	PlayerPos() core.Vec2
	// LevelBounds returns the level's world rectangle.
	LevelBounds() core.RectF
	// SpawnFireball queues a fireball; it joins the world after this tick's updates.
	SpawnFireball(at, dir core.Vec2)
	// SpawnRock queues a dropped rock.
	SpawnRock(at core.Vec2)
	// RockLanded reports a rock that touched down this tick.
	RockLanded(r *Rock)
	// Emit records a side effect for the platform (sound, log).
	Emit(e Event)
}
