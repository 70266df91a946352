package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultShipShootYAML)
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShipShootConfig()) {
		t.Errorf("embedded YAML and DefaultShipShootConfig() disagree:\n yaml=%+v\n code=%+v", cfg, DefaultShipShootConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nboss:\n  interval: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShipShoot(path)
	if err != nil {
		t.Fatalf("LoadShipShoot() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Boss.Interval != 4 {
		t.Errorf("boss interval = %v, expected 4", cfg.Boss.Interval)
	}
	// Untouched keys keep their defaults
	if cfg.Bullets.Speed != 300 {
		t.Errorf("bullet speed = %v, expected default 300", cfg.Bullets.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadShipShoot(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShipShoot(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShipShoot(invalid); err == nil {
		t.Error("zero lives should fail validation")
	}
}

func TestApplyShipShootPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		lives        int
		enabled      bool
		initialLevel float64
	}{
		{"", 3, false, 0.0},
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShipShootConfig()
			ApplyShipShootPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("difficulty enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if ParseDifficultyPreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficultyPreset("insane") != "" {
		t.Error("unknown presets should be ignored")
	}
}
