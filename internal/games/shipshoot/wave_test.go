package shipshoot

import (
	"testing"

	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
)

var testArea = core.RectF{Left: 24, Top: 576, Right: 736, Bottom: 576}

func TestWavePopulate(t *testing.T) {
	cfg := config.DefaultShipShootConfig()
	w := NewWave(cfg)
	w.Populate(cfg.Enemies.Grid)

	// 6 columns (100..450) by 7 rows (50..230)
	if w.Len() != 42 {
		t.Fatalf("wave has %d enemies, expected 42", w.Len())
	}
	if first := w.Enemies[0].Pos; first != (core.Vec2{X: 100, Y: 50}) {
		t.Errorf("first enemy at %v", first)
	}
	if last := w.Enemies[41].Pos; last != (core.Vec2{X: 450, Y: 230}) {
		t.Errorf("last enemy at %v", last)
	}
	if w.Regulars() != 42 {
		t.Errorf("Regulars() = %d", w.Regulars())
	}
}

func TestWaveSynchronizedFlip(t *testing.T) {
	w := NewWave(config.DefaultShipShootConfig())
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 100, Y: 50}})
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 200, Y: 80}})
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 737, Y: 110}})
	w.SpawnBoss(core.Vec2{X: 300, Y: 20}, 100)

	if !w.CheckSwitchDirection(testArea) {
		t.Fatal("enemy past the right edge should flip the wave")
	}
	if w.Speed != -20 {
		t.Errorf("shared speed = %v, expected -20", w.Speed)
	}

	expectedY := []float64{70, 100, 130, 20}
	for i, e := range w.Enemies {
		if e.Pos.Y != expectedY[i] {
			t.Errorf("enemy %d Y = %v, expected %v", i, e.Pos.Y, expectedY[i])
		}
	}

	// Already heading away from the edge: no second drop
	if w.CheckSwitchDirection(testArea) {
		t.Error("wave should not flip again while moving away")
	}
	if w.Enemies[0].Pos.Y != 70 {
		t.Error("wave dropped twice")
	}
}

func TestWaveFirstFlipWins(t *testing.T) {
	w := NewWave(config.DefaultShipShootConfig())
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 737, Y: 50}})
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 10, Y: 50}})

	w.CheckSwitchDirection(testArea)

	// The second enemy would flip the speed back if it were checked
	if w.Speed != -20 {
		t.Errorf("shared speed = %v, expected -20", w.Speed)
	}
	for i, e := range w.Enemies {
		if e.Pos.Y != 70 {
			t.Errorf("enemy %d Y = %v, expected one drop to 70", i, e.Pos.Y)
		}
	}
}

func TestWaveAdvance(t *testing.T) {
	w := NewWave(config.DefaultShipShootConfig())
	w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: 100, Y: 50}})
	w.SpawnBoss(core.Vec2{X: 799, Y: 20}, 100)
	w.SpawnBoss(core.Vec2{X: 0, Y: 20}, 100)

	w.Advance(0.5)

	if w.Len() != 2 {
		t.Fatalf("wave has %d enemies, expected the exiting boss removed", w.Len())
	}
	if w.Enemies[0].Pos.X != 110 {
		t.Errorf("regular X = %v, expected 110", w.Enemies[0].Pos.X)
	}
	if w.Enemies[1].Kind != EnemyBoss || w.Enemies[1].Pos.X != 50 {
		t.Errorf("remaining boss = %+v", w.Enemies[1])
	}
}

func TestWaveRemoveAt(t *testing.T) {
	w := NewWave(config.DefaultShipShootConfig())
	for x := 0.0; x < 3; x++ {
		w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: x}})
	}

	w.RemoveAt(1)

	if w.Len() != 2 || w.Enemies[0].Pos.X != 0 || w.Enemies[1].Pos.X != 2 {
		t.Errorf("RemoveAt(1) left %v", w.Enemies)
	}
}
