package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(20, 100, 0); got != 40 {
		t.Errorf("Speed at max difficulty = %v, expected 40", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultShipShootConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default config should not progress difficulty")
	}
	if got := d.Speed(20, 10_000, 10_000); got != 20 {
		t.Errorf("disabled manager should keep base speed, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})

	if got := d.Level(0, 300); got != 0.5 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}
