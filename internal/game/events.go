package game

import "github.com/vovakirdan/dragoncave/internal/core"

// EventKind identifies a side effect of a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventRockDropped
	EventTreasure
	EventBigTreasureSpawned
	EventBigTreasure
	EventRoar
	EventDistracted
	EventCalmed
	EventFireball
	EventHit
	EventLevelStart
	EventLevelComplete
	EventVictory
	EventDefeat
	EventCatalogSwapped
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventRockDropped:
		return "rock_dropped"
	case EventTreasure:
		return "treasure"
	case EventBigTreasureSpawned:
		return "big_treasure_spawned"
	case EventBigTreasure:
		return "big_treasure"
	case EventRoar:
		return "roar"
	case EventDistracted:
		return "distracted"
	case EventCalmed:
		return "calmed"
	case EventFireball:
		return "fireball"
	case EventHit:
		return "hit"
	case EventLevelStart:
		return "level_start"
	case EventLevelComplete:
		return "level_complete"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventCatalogSwapped:
		return "catalog_swapped"
	default:
		return "unknown"
	}
}

// Event is a side effect reported to the platform. The simulation never
// plays sounds or logs on its own.
type Event struct {
	Kind   EventKind
	Pos    core.Vec2 // World position where it happened, if any
	Dragon int       // Dragon index for dragon events
	Level  int       // 1-based level number for level events
	Score  int       // Level score for pickups, total for session events
}
