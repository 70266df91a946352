package shipshoot

import "github.com/vovakirdan/shipshoot/internal/core"

// Field holds every entity that takes part in collisions.
type Field struct {
	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	Wave          *Wave
	Shields       []Shield

	Player     core.Vec2 // top-left corner of the ship
	PlayerSize core.Vec2
	BulletSize core.Vec2
}

// PlayerBounds returns the ship's collision box.
func (f *Field) PlayerBounds() core.RectF {
	return core.BoxAt(f.Player, f.PlayerSize)
}

// Outcome summarizes one collision pass.
type Outcome struct {
	Score            int // points earned
	EnemiesKilled    int
	BossesKilled     int
	BulletsCancelled int // player/enemy bullet pairs
	PlayerHit        bool
	ShieldHits       int // pieces removed
}

// ResolveCollisions runs the collision passes in order and removes every
// entity that was hit:
//
//  1. each player bullet kills at most one enemy;
//  2. a player bullet that hit no enemy may cancel one enemy bullet;
//  3. unless the player is respawning, at most one enemy bullet hits the ship;
//  4. shields, highest index first, absorb enemy bullets then player bullets.
//
// Candidates are scanned from the highest index down. Hit entities are
// marked and skipped by later checks, then swept once at the end.
func ResolveCollisions(f *Field, respawning bool) Outcome {
	var out Outcome

	pDead := make([]bool, len(f.PlayerBullets))
	ebDead := make([]bool, len(f.EnemyBullets))
	eDead := make([]bool, f.Wave.Len())

	for i := len(f.PlayerBullets) - 1; i >= 0; i-- {
		box := f.PlayerBullets[i].Bounds(f.BulletSize)

		hit := false
		for j := f.Wave.Len() - 1; j >= 0; j-- {
			if eDead[j] || !box.Overlaps(f.Wave.Bounds(j)) {
				continue
			}
			e := &f.Wave.Enemies[j]
			out.Score += e.Score(f.Wave)
			out.EnemiesKilled++
			if e.Kind == EnemyBoss {
				out.BossesKilled++
			}
			pDead[i], eDead[j] = true, true
			hit = true
			break
		}
		if hit {
			continue
		}

		for k := len(f.EnemyBullets) - 1; k >= 0; k-- {
			if ebDead[k] || !box.Overlaps(f.EnemyBullets[k].Bounds(f.BulletSize)) {
				continue
			}
			pDead[i], ebDead[k] = true, true
			out.BulletsCancelled++
			break
		}
	}

	if !respawning {
		player := f.PlayerBounds()
		for k := len(f.EnemyBullets) - 1; k >= 0; k-- {
			if ebDead[k] || !player.Overlaps(f.EnemyBullets[k].Bounds(f.BulletSize)) {
				continue
			}
			ebDead[k] = true
			out.PlayerHit = true
			break
		}
	}

	for s := len(f.Shields) - 1; s >= 0; s-- {
		shield := &f.Shields[s]
		for k := len(f.EnemyBullets) - 1; k >= 0; k-- {
			if !ebDead[k] && shield.CheckCollision(f.EnemyBullets[k].Bounds(f.BulletSize)) {
				ebDead[k] = true
				out.ShieldHits++
			}
		}
		for i := len(f.PlayerBullets) - 1; i >= 0; i-- {
			if !pDead[i] && shield.CheckCollision(f.PlayerBullets[i].Bounds(f.BulletSize)) {
				pDead[i] = true
				out.ShieldHits++
			}
		}
	}

	f.PlayerBullets = sweep(f.PlayerBullets, pDead)
	f.EnemyBullets = sweep(f.EnemyBullets, ebDead)
	f.Wave.Enemies = sweep(f.Wave.Enemies, eDead)

	return out
}

// sweep compacts items in place, dropping those marked dead.
func sweep[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
