// Package config provides YAML-based game configuration loading and
// difficulty management for shipshoot.
package config

// ShipShootConfig contains all tunables of the simulation.
// Distances are world units, times are seconds, speeds are units per second.
type ShipShootConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Boss       BossConfig       `yaml:"boss"`
	Shields    ShieldConfig     `yaml:"shields"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Background BackgroundConfig `yaml:"background"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the viewport the simulation runs in.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship and its movement.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // keyboard
	MouseSpeed  float64 `yaml:"mouse_speed"`  // multiplier on mouse delta per second
	PadSpeed    float64 `yaml:"pad_speed"`    // full stick deflection
	EdgeMargin  float64 `yaml:"edge_margin"`  // play area inset as a fraction of ship width
	RowFraction float64 `yaml:"row_fraction"` // ship row as a fraction of world height
	ThrustTime  float64 `yaml:"thrust_time"`
}

// BulletConfig defines both player and enemy bullets.
type BulletConfig struct {
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaxPlayer  int     `yaml:"max_player"`
	AnimFrames int     `yaml:"anim_frames"`
	AnimFPS    float64 `yaml:"anim_fps"`
}

// EnemyConfig defines the regular wave.
type EnemyConfig struct {
	Width            float64    `yaml:"width"`
	Height           float64    `yaml:"height"`
	Speed            float64    `yaml:"speed"`
	DropStep         float64    `yaml:"drop_step"`
	Score            int        `yaml:"score"`
	FireIntervalBase float64    `yaml:"fire_interval_base"` // divided by enemy count
	FirstFireDelay   float64    `yaml:"first_fire_delay"`
	Grid             GridConfig `yaml:"grid"`
}

// GridConfig lays out the initial wave; end values are exclusive.
type GridConfig struct {
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
	StepX  float64 `yaml:"step_x"`
	StartY float64 `yaml:"start_y"`
	EndY   float64 `yaml:"end_y"`
	StepY  float64 `yaml:"step_y"`
}

// BossConfig defines the periodic boss.
type BossConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	SpawnX   float64 `yaml:"spawn_x"`
	SpawnY   float64 `yaml:"spawn_y"`
	Interval float64 `yaml:"interval"`
	Score    int     `yaml:"score"`
}

// ShieldConfig lays out the shields and their pieces.
type ShieldConfig struct {
	StartX      float64 `yaml:"start_x"`
	EndX        float64 `yaml:"end_x"`
	StepX       float64 `yaml:"step_x"`
	Y           float64 `yaml:"y"`
	Radius      float64 `yaml:"radius"`
	Spacing     float64 `yaml:"spacing"`
	PieceWidth  float64 `yaml:"piece_width"`
	PieceHeight float64 `yaml:"piece_height"`
}

// GameplayConfig holds session rules.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	RespawnTime float64 `yaml:"respawn_time"`
	NameMaxLen  int     `yaml:"name_max_len"`
}

// BackgroundConfig drives the cosmetic parallax.
type BackgroundConfig struct {
	Layers      int     `yaml:"layers"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// AudioConfig names the sounds the session asks for.
type AudioConfig struct {
	Laser      string  `yaml:"laser"`
	Song       string  `yaml:"song"`
	SongVolume float64 `yaml:"song_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to wave speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
