package shipshoot

import "github.com/vovakirdan/shipshoot/internal/core"

// EnemyKind tags the enemy variants.
type EnemyKind int

const (
	EnemyRegular EnemyKind = iota
	EnemyBoss
	enemyKindCount
)

// String returns the kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyRegular:
		return "regular"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

// Enemy is one member of the wave.
type Enemy struct {
	Kind   EnemyKind
	Pos    core.Vec2
	XSpeed float64 // boss only; regular enemies move with the wave
}

// enemyBehavior is the per-kind rule set. The wave supplies shared state.
type enemyBehavior struct {
	update          func(w *Wave, e *Enemy, dt float64)
	moveDown        func(w *Wave, e *Enemy)
	switchDirection func(w *Wave, e *Enemy, area core.RectF) bool
	shouldDestroy   func(w *Wave, e *Enemy) bool
	score           func(w *Wave) int
	bossBullet      bool
}

var behaviors = [enemyKindCount]enemyBehavior{
	EnemyRegular: {
		update: func(w *Wave, e *Enemy, dt float64) {
			e.Pos.X += w.Speed * dt
		},
		moveDown: func(w *Wave, e *Enemy) {
			e.Pos.Y += w.DropStep
		},
		switchDirection: func(w *Wave, e *Enemy, area core.RectF) bool {
			if (w.Speed > 0 && e.Pos.X > area.Right) || (w.Speed < 0 && e.Pos.X < area.Left) {
				w.Speed = -w.Speed
				return true
			}
			return false
		},
		shouldDestroy: func(*Wave, *Enemy) bool { return false },
		score:         func(w *Wave) int { return w.RegularScore },
	},
	EnemyBoss: {
		update: func(_ *Wave, e *Enemy, dt float64) {
			e.Pos.X += e.XSpeed * dt
		},
		moveDown:        func(*Wave, *Enemy) {},
		switchDirection: func(*Wave, *Enemy, core.RectF) bool { return false },
		shouldDestroy: func(w *Wave, e *Enemy) bool {
			return e.Pos.X > w.ViewportW
		},
		score:      func(w *Wave) int { return w.BossScore },
		bossBullet: true,
	},
}

// Update moves the enemy for one frame.
func (e *Enemy) Update(w *Wave, dt float64) {
	behaviors[e.Kind].update(w, e, dt)
}

// MoveDown drops the enemy one wave step. Bosses ignore it.
func (e *Enemy) MoveDown(w *Wave) {
	behaviors[e.Kind].moveDown(w, e)
}

// CheckSwitchDirection flips the wave's shared speed if this enemy has
// passed the edge it is heading for, and reports whether it did.
func (e *Enemy) CheckSwitchDirection(w *Wave, area core.RectF) bool {
	return behaviors[e.Kind].switchDirection(w, e, area)
}

// ShouldDestroy reports whether the enemy has left the world for good.
func (e *Enemy) ShouldDestroy(w *Wave) bool {
	return behaviors[e.Kind].shouldDestroy(w, e)
}

// Score returns the points for destroying the enemy.
func (e *Enemy) Score(w *Wave) int {
	return behaviors[e.Kind].score(w)
}

// FiresBossBullet reports whether the enemy's shots use the boss sprite.
func (e *Enemy) FiresBossBullet() bool {
	return behaviors[e.Kind].bossBullet
}
