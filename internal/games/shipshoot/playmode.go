package shipshoot

import (
	"math"

	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
)

// Rand is the random source the session draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlayMode is one play session: from the first wave until game over.
type PlayMode struct {
	Field

	cfg        config.ShipShootConfig
	rng        Rand
	difficulty *config.DifficultyManager
	area       core.RectF

	score   int
	lives   int
	respawn float64 // > 0 while the ship is hidden and invulnerable

	bossTimer float64
	fireTimer float64
	thrust    float64
	fireDown  bool
	bgnd      []float64 // horizontal scroll offset per layer
	ticks     int

	sounds []core.SoundEvent
	closed bool
}

// NewPlayMode builds the first wave, the shields and the ship, and starts the song.
func NewPlayMode(cfg config.ShipShootConfig, rng Rand) *PlayMode {
	p := &PlayMode{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		lives:      cfg.Gameplay.Lives,
		bossTimer:  cfg.Boss.Interval,
		fireTimer:  cfg.Enemies.FirstFireDelay,
		bgnd:       make([]float64, cfg.Background.Layers),
	}

	p.Wave = NewWave(cfg)
	p.Wave.Populate(cfg.Enemies.Grid)

	for x := cfg.Shields.StartX; x < cfg.Shields.EndX; x += cfg.Shields.StepX {
		p.Shields = append(p.Shields, NewShield(core.Vec2{X: x, Y: cfg.Shields.Y}, cfg.Shields))
	}

	p.PlayerSize = core.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height}
	p.BulletSize = core.Vec2{X: cfg.Bullets.Width, Y: cfg.Bullets.Height}

	// The ship keeps a margin from each side and stays on one row.
	left := cfg.Player.Width * cfg.Player.EdgeMargin
	row := cfg.World.Height * cfg.Player.RowFraction
	p.area = core.RectF{
		Left:   left,
		Top:    row,
		Right:  cfg.World.Width - left - cfg.Player.Width,
		Bottom: row,
	}
	p.Player = core.Vec2{X: (cfg.World.Width - cfg.Player.Width) / 2, Y: row}

	p.emit(core.SongPlay(cfg.Audio.Song, true, cfg.Audio.SongVolume))
	return p
}

// Update advances the session by dt seconds. The order of the steps is fixed.
func (p *PlayMode) Update(dt float64, in core.InputFrame) Outcome {
	p.ticks++
	p.respawn -= dt
	p.thrust -= dt
	p.applyDifficulty()

	p.updateBackground(dt)
	p.updateBullets(dt, in)
	p.updateInput(dt, in)
	p.updateEnemies(dt)

	out := ResolveCollisions(&p.Field, p.Respawning())
	p.score += out.Score
	if out.PlayerHit {
		p.lives--
		p.respawn = p.cfg.Gameplay.RespawnTime
	}
	return out
}

// applyDifficulty rescales the wave speed, keeping its direction.
func (p *PlayMode) applyDifficulty() {
	if !p.difficulty.IsEnabled() {
		return
	}
	speed := p.difficulty.Speed(p.cfg.Enemies.Speed, p.score, p.ticks)
	p.Wave.Speed = math.Copysign(speed, p.Wave.Speed)
}

func (p *PlayMode) updateBackground(dt float64) {
	for i := range p.bgnd {
		p.bgnd[i] = math.Mod(p.bgnd[i]+dt*float64(i)*p.cfg.Background.ScrollSpeed, p.cfg.World.Width)
	}
}

func (p *PlayMode) updateBullets(dt float64, in core.InputFrame) {
	fire := in.Pressed(core.KeySpace)
	if !p.Respawning() && len(p.PlayerBullets) < p.cfg.Bullets.MaxPlayer && fire && !p.fireDown {
		pos := core.Vec2{
			X: p.Player.X + p.PlayerSize.X/2 - p.BulletSize.X/2,
			Y: p.Player.Y,
		}
		p.PlayerBullets = append(p.PlayerBullets, p.newBullet(pos, -1, false))
		p.emit(core.Sfx(p.cfg.Audio.Laser))
	}
	p.fireDown = fire

	p.PlayerBullets = p.advanceBullets(p.PlayerBullets, dt)

	p.fireTimer -= dt
	if p.fireTimer <= 0 && !p.Wave.Empty() {
		n := p.Wave.Len()
		e := p.Wave.Enemies[p.rng.Intn(n)]
		size := p.Wave.Size(e.Kind)
		pos := core.Vec2{X: e.Pos.X + size.X/8, Y: e.Pos.Y}
		p.EnemyBullets = append(p.EnemyBullets, p.newBullet(pos, 1, e.FiresBossBullet()))
		p.fireTimer = p.cfg.Enemies.FireIntervalBase / float64(n)
	}

	p.EnemyBullets = p.advanceBullets(p.EnemyBullets, dt)
}

func (p *PlayMode) newBullet(pos core.Vec2, dir float64, boss bool) Bullet {
	return NewBullet(pos, dir, boss, p.cfg.Bullets.AnimFrames, p.cfg.Bullets.AnimFPS)
}

// advanceBullets moves every bullet and drops those past the top edge.
func (p *PlayMode) advanceBullets(bullets []Bullet, dt float64) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Update(dt, p.cfg.Bullets.Speed)
		if !b.OutOfBounds() {
			kept = append(kept, b)
		}
	}
	return kept
}

func (p *PlayMode) updateInput(dt float64, in core.InputFrame) {
	if p.Respawning() {
		return
	}

	var d core.Vec2
	speed := p.cfg.Player.Speed * dt
	if in.Pressed(core.KeyUp) {
		d.Y -= speed
	} else if in.Pressed(core.KeyDown) {
		d.Y += speed
	}
	if in.Pressed(core.KeyRight) {
		d.X += speed
	} else if in.Pressed(core.KeyLeft) {
		d.X -= speed
	}

	d = d.Add(in.Mouse.Scale(p.cfg.Player.MouseSpeed * dt))

	if in.Pad.Connected {
		d.X += in.Pad.StickX * p.cfg.Player.PadSpeed * dt
		d.Y -= in.Pad.StickY * p.cfg.Player.PadSpeed * dt
	}

	if !d.IsZero() {
		p.thrust = p.cfg.Player.ThrustTime
	}
	p.Player = p.area.Clamp(p.Player.Add(d))
}

func (p *PlayMode) updateEnemies(dt float64) {
	p.bossTimer -= dt
	if p.bossTimer <= 0 {
		p.Wave.SpawnBoss(core.Vec2{X: p.cfg.Boss.SpawnX, Y: p.cfg.Boss.SpawnY}, p.cfg.Boss.Speed)
		p.bossTimer = p.cfg.Boss.Interval
	}

	p.Wave.Advance(dt)
	p.Wave.CheckSwitchDirection(p.area)
}

// IsGameOver reports whether the ship is out of lives or the wave is gone.
func (p *PlayMode) IsGameOver() bool {
	return p.lives <= 0 || p.Wave.Empty()
}

// Score returns the points earned so far.
func (p *PlayMode) Score() int {
	return p.score
}

// Lives returns the remaining lives.
func (p *PlayMode) Lives() int {
	return p.lives
}

// Respawning reports whether the ship is hidden and invulnerable.
func (p *PlayMode) Respawning() bool {
	return p.respawn > 0
}

// Thrusting reports whether the ship moved recently.
func (p *PlayMode) Thrusting() bool {
	return p.thrust > 0
}

// PlayArea returns the rectangle the ship is clamped to.
func (p *PlayMode) PlayArea() core.RectF {
	return p.area
}

// Close stops the song. Calling it twice is harmless.
func (p *PlayMode) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.emit(core.SongStop())
}

// DrainSounds returns the sound events emitted since the last call.
func (p *PlayMode) DrainSounds() []core.SoundEvent {
	s := p.sounds
	p.sounds = nil
	return s
}

func (p *PlayMode) emit(ev core.SoundEvent) {
	p.sounds = append(p.sounds, ev)
}
