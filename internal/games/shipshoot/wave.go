package shipshoot

import (
	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
)

// Wave owns the enemies and the horizontal speed shared by every regular
// enemy. A direction change applies to the whole wave at once.
type Wave struct {
	Enemies []Enemy

	Speed        float64 // signed; shared by regular enemies
	DropStep     float64
	ViewportW    float64
	RegularScore int
	BossScore    int
	RegularSize  core.Vec2
	BossSize     core.Vec2
}

// NewWave creates an empty wave from the configuration.
func NewWave(cfg config.ShipShootConfig) *Wave {
	return &Wave{
		Speed:        cfg.Enemies.Speed,
		DropStep:     cfg.Enemies.DropStep,
		ViewportW:    cfg.World.Width,
		RegularScore: cfg.Enemies.Score,
		BossScore:    cfg.Boss.Score,
		RegularSize:  core.Vec2{X: cfg.Enemies.Width, Y: cfg.Enemies.Height},
		BossSize:     core.Vec2{X: cfg.Boss.Width, Y: cfg.Boss.Height},
	}
}

// Populate adds the regular grid, row by row. End coordinates are exclusive.
func (w *Wave) Populate(g config.GridConfig) {
	for y := g.StartY; y < g.EndY; y += g.StepY {
		for x := g.StartX; x < g.EndX; x += g.StepX {
			w.Add(Enemy{Kind: EnemyRegular, Pos: core.Vec2{X: x, Y: y}})
		}
	}
}

// Add appends an enemy.
func (w *Wave) Add(e Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// SpawnBoss appends a boss moving right at speed.
func (w *Wave) SpawnBoss(pos core.Vec2, speed float64) {
	w.Add(Enemy{Kind: EnemyBoss, Pos: pos, XSpeed: speed})
}

// Len returns the number of live enemies.
func (w *Wave) Len() int {
	return len(w.Enemies)
}

// Empty reports whether the wave has been wiped out.
func (w *Wave) Empty() bool {
	return len(w.Enemies) == 0
}

// RemoveAt deletes the enemy at index i, keeping order.
func (w *Wave) RemoveAt(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

// Size returns the sprite size for an enemy kind.
func (w *Wave) Size(k EnemyKind) core.Vec2 {
	if k == EnemyBoss {
		return w.BossSize
	}
	return w.RegularSize
}

// Bounds returns the collision box of the enemy at index i.
func (w *Wave) Bounds(i int) core.RectF {
	e := w.Enemies[i]
	return core.BoxAt(e.Pos, w.Size(e.Kind))
}

// Advance moves every enemy and drops those that left the world.
func (w *Wave) Advance(dt float64) {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		w.Enemies[i].Update(w, dt)
		if w.Enemies[i].ShouldDestroy(w) {
			w.RemoveAt(i)
		}
	}
}

// CheckSwitchDirection asks each enemy in order whether it reached an edge.
// The first one that flips the shared speed drops the whole wave one step,
// and no further enemies are checked this frame.
func (w *Wave) CheckSwitchDirection(area core.RectF) bool {
	for i := range w.Enemies {
		if w.Enemies[i].CheckSwitchDirection(w, area) {
			for j := range w.Enemies {
				w.Enemies[j].MoveDown(w)
			}
			return true
		}
	}
	return false
}

// Regulars counts the enemies that belong to the grid.
func (w *Wave) Regulars() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind == EnemyRegular {
			n++
		}
	}
	return n
}
