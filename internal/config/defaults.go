package config

import (
	_ "embed"
)

//go:embed defaults/shipshoot.yaml
var defaultShipShootYAML []byte

// DefaultShipShootConfig returns the default configuration.
// Kept in sync with defaults/shipshoot.yaml; used if the embedded YAML fails to parse.
func DefaultShipShootConfig() ShipShootConfig {
	return ShipShootConfig{
		World: WorldConfig{
			Width:  800,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      24,
			Speed:       250,
			MouseSpeed:  60,
			PadSpeed:    500,
			EdgeMargin:  0.6,
			RowFraction: 0.9,
			ThrustTime:  0.2,
		},
		Bullets: BulletConfig{
			Speed:      300,
			Width:      8,
			Height:     16,
			MaxPlayer:  3,
			AnimFrames: 4,
			AnimFPS:    15,
		},
		Enemies: EnemyConfig{
			Width:            40,
			Height:           20,
			Speed:            20,
			DropStep:         20,
			Score:            10,
			FireIntervalBase: 60,
			FirstFireDelay:   2,
			Grid: GridConfig{
				StartX: 100, EndX: 500, StepX: 70,
				StartY: 50, EndY: 250, StepY: 30,
			},
		},
		Boss: BossConfig{
			Width:    60,
			Height:   20,
			Speed:    100,
			SpawnX:   0,
			SpawnY:   20,
			Interval: 10,
			Score:    100,
		},
		Shields: ShieldConfig{
			StartX:      100,
			EndX:        600,
			StepX:       120,
			Y:           500,
			Radius:      30,
			Spacing:     15,
			PieceWidth:  12,
			PieceHeight: 12,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			RespawnTime: 3,
			NameMaxLen:  12,
		},
		Background: BackgroundConfig{
			Layers:      2,
			ScrollSpeed: 10,
		},
		Audio: AudioConfig{
			Laser:      "laser",
			Song:       "spacejam",
			SongVolume: 0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShipShootYAML
}
