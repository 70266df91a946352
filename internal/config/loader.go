package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "shipshoot.yaml"

// LoadShipShoot loads the game configuration.
// Search order: customPath -> ~/.shipshoot/configs/shipshoot.yaml -> ./configs/shipshoot.yaml -> embedded default
//
// Every source is decoded on top of the defaults, so a file only needs the keys it changes.
func LoadShipShoot(customPath string) (ShipShootConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultShipShootConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultShipShootConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultShipShootYAML)
	if err != nil {
		return DefaultShipShootConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (ShipShootConfig, error) {
	cfg := DefaultShipShootConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shipshoot", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c ShipShootConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Bullets.MaxPlayer < 1 {
		errs = append(errs, errors.New("bullets.max_player must be at least 1"))
	}
	if c.Bullets.AnimFrames < 1 {
		errs = append(errs, errors.New("bullets.anim_frames must be at least 1"))
	}
	if c.Enemies.Grid.StepX <= 0 || c.Enemies.Grid.StepY <= 0 {
		errs = append(errs, errors.New("enemies.grid steps must be positive"))
	}
	if c.Shields.StepX <= 0 || c.Shields.Spacing <= 0 {
		errs = append(errs, errors.New("shield steps must be positive"))
	}
	if c.Boss.Interval <= 0 {
		errs = append(errs, errors.New("boss.interval must be positive"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, errors.New("gameplay.lives must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ParseDifficultyPreset maps a CLI string to a preset; empty and unknown values return "".
func ParseDifficultyPreset(preset string) DifficultyPreset {
	switch DifficultyPreset(preset) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(preset)
	default:
		return ""
	}
}

// ApplyShipShootPreset modifies the config based on a difficulty preset.
func ApplyShipShootPreset(cfg *ShipShootConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemies.FireIntervalBase = 90
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.FireIntervalBase = 40
		cfg.Boss.Interval = 7
	}
}
