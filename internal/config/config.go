// Package config provides YAML-based tuning configuration for the cave
// simulation and the difficulty presets that choose a default dragon count.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tuning for the cave simulation.
// Distances are in world units (the 800x600 world screen), speeds in units
// per tick. Intervals are wall time in milliseconds and are converted to
// ticks at the session's tick rate.
type GameConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Dragon   DragonConfig   `yaml:"dragon"`
	Fireball FireballConfig `yaml:"fireball"`
	Rock     RockConfig     `yaml:"rock"`
	Pickups  PickupsConfig  `yaml:"pickups"`
	Controls ControlsConfig `yaml:"controls"`
}

// WorldConfig defines the world screen and camera parameters.
type WorldConfig struct {
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	GroundLevel  float64 `yaml:"ground_level"`
	SafetyFloor  float64 `yaml:"safety_floor"` // Player bottom below this snaps back to ground
	// ScrollThreshold is the distance from either screen edge that starts
	// scrolling. Zero means one third of the screen width.
	ScrollThreshold float64 `yaml:"scroll_threshold"`
}

// PlayerConfig defines caver physics.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	StartX         float64 `yaml:"start_x"`
	StartBottom    float64 `yaml:"start_bottom"`
	Acceleration   float64 `yaml:"acceleration"`
	Friction       float64 `yaml:"friction"` // Negative; multiplied by horizontal velocity
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MaxSpeed       float64 `yaml:"max_speed"`
	StopThreshold  float64 `yaml:"stop_threshold"`
	RockCooldownMS int     `yaml:"rock_cooldown_ms"`
}

// DragonConfig defines dragon behavior and placement.
type DragonConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	WakeRange        float64 `yaml:"wake_range"`
	Speed            float64 `yaml:"speed"`
	ChaseEpsilon     float64 `yaml:"chase_epsilon"`
	ArrivalRadius    float64 `yaml:"arrival_radius"`
	FireIntervalMS   int     `yaml:"fire_interval_ms"`
	DistractionMS    int     `yaml:"distraction_ms"`
	HitboxRatio      float64 `yaml:"hitbox_ratio"`
	// Treasure pickups wake sleeping dragons within WakeRange*PickupWakeFactor
	// with a chance capped at PickupWakeCap.
	PickupWakeFactor float64 `yaml:"pickup_wake_factor"`
	PickupWakeCap    float64 `yaml:"pickup_wake_cap"`
	SpawnMinFraction float64 `yaml:"spawn_min_fraction"`
	SpawnEdgeMargin  float64 `yaml:"spawn_edge_margin"`
	DefaultCount     int     `yaml:"default_count"`
	MaxCount         int     `yaml:"max_count"`
}

// FireballConfig defines fireball motion.
type FireballConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	HitboxRatio float64 `yaml:"hitbox_ratio"`
}

// RockConfig defines dropped rock physics.
type RockConfig struct {
	Size          float64 `yaml:"size"`
	Gravity       float64 `yaml:"gravity"`
	HearingRadius float64 `yaml:"hearing_radius"`
}

// PickupsConfig defines sizes of the static level entities.
type PickupsConfig struct {
	TreasureSize    float64 `yaml:"treasure_size"`
	BigTreasureSize float64 `yaml:"big_treasure_size"`
	ObstacleSize    float64 `yaml:"obstacle_size"`
	ExitWidth       float64 `yaml:"exit_width"`
	ExitHeight      float64 `yaml:"exit_height"`
}

// ControlsConfig defines terminal input emulation.
type ControlsConfig struct {
	// HoldTicks is how long a single left/right key press counts as held.
	// Terminals report presses only, so auto-repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// ScrollThresh returns the effective scroll threshold.
func (w WorldConfig) ScrollThresh() float64 {
	if w.ScrollThreshold > 0 {
		return w.ScrollThreshold
	}
	return float64(int(w.ScreenWidth) / 3)
}

// Validate reports every out-of-range tuning value at once.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}

	positive("world.screen_width", c.World.ScreenWidth)
	positive("world.screen_height", c.World.ScreenHeight)
	positive("world.ground_level", c.World.GroundLevel)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.max_speed", c.Player.MaxSpeed)
	positive("dragon.width", c.Dragon.Width)
	positive("dragon.height", c.Dragon.Height)
	positive("dragon.speed", c.Dragon.Speed)
	positive("fireball.size", c.Fireball.Size)
	positive("fireball.speed", c.Fireball.Speed)
	positive("rock.size", c.Rock.Size)
	positive("pickups.treasure_size", c.Pickups.TreasureSize)
	positive("pickups.obstacle_size", c.Pickups.ObstacleSize)

	if c.Player.RockCooldownMS < 0 || c.Dragon.FireIntervalMS < 0 || c.Dragon.DistractionMS < 0 {
		errs = append(errs, errors.New("config: intervals must not be negative"))
	}
	if c.Player.Friction > 0 {
		errs = append(errs, fmt.Errorf("config: player.friction must not be positive, got %v", c.Player.Friction))
	}
	if c.Dragon.MaxCount < 1 {
		errs = append(errs, fmt.Errorf("config: dragon.max_count must be at least 1, got %d", c.Dragon.MaxCount))
	}
	if c.Dragon.DefaultCount < 1 || c.Dragon.DefaultCount > c.Dragon.MaxCount {
		errs = append(errs, fmt.Errorf("config: dragon.default_count %d outside 1..%d", c.Dragon.DefaultCount, c.Dragon.MaxCount))
	}
	if c.Dragon.SpawnMinFraction < 0 || c.Dragon.SpawnMinFraction > 1 {
		errs = append(errs, fmt.Errorf("config: dragon.spawn_min_fraction must be within [0, 1], got %v", c.Dragon.SpawnMinFraction))
	}
	if c.Controls.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("config: controls.hold_ticks must be at least 1, got %d", c.Controls.HoldTicks))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (expected easy, normal or hard)", s)
	}
}

// DragonsForPreset returns the default dragon count for a difficulty preset.
func DragonsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Dragon.DefaultCount = min(DragonsForPreset(preset), cfg.Dragon.MaxCount)

	// Harder caves let dragons breathe fire a little more often.
	switch preset {
	case DifficultyEasy:
		cfg.Dragon.FireIntervalMS = 2500
	case DifficultyHard:
		cfg.Dragon.FireIntervalMS = 1500
	}
}
