package config

import (
	_ "embed"
)

//go:embed defaults/dragoncave.yaml
var defaultGameYAML []byte

// Default returns the built-in cave tuning.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			ScreenWidth:     800,
			ScreenHeight:    600,
			GroundLevel:     560,
			SafetyFloor:     610,
			ScrollThreshold: 266,
		},
		Player: PlayerConfig{
			Width:          30,
			Height:         40,
			StartX:         200,
			StartBottom:    550,
			Acceleration:   0.5,
			Friction:       -0.12,
			Gravity:        0.6,
			JumpImpulse:    15,
			MaxSpeed:       7,
			StopThreshold:  0.1,
			RockCooldownMS: 1000,
		},
		Dragon: DragonConfig{
			Width:            60,
			Height:           50,
			WakeRange:        150,
			Speed:            1.5,
			ChaseEpsilon:     5,
			ArrivalRadius:    10,
			FireIntervalMS:   2000,
			DistractionMS:    3000,
			HitboxRatio:      0.8,
			PickupWakeFactor: 1.5,
			PickupWakeCap:    0.5,
			SpawnMinFraction: 0.25,
			SpawnEdgeMargin:  50,
			DefaultCount:     1,
			MaxCount:         5,
		},
		Fireball: FireballConfig{
			Size:        15,
			Speed:       5,
			HitboxRatio: 0.8,
		},
		Rock: RockConfig{
			Size:          15,
			Gravity:       0.8,
			HearingRadius: 100,
		},
		Pickups: PickupsConfig{
			TreasureSize:    20,
			BigTreasureSize: 50,
			ObstacleSize:    50,
			ExitWidth:       40,
			ExitHeight:      60,
		},
		Controls: ControlsConfig{
			HoldTicks: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
