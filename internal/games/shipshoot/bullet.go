package shipshoot

import (
	"math"

	"github.com/vovakirdan/shipshoot/internal/core"
)

// Animation is a looping frame counter.
type Animation struct {
	Frames  int
	FPS     float64
	frame   int
	elapsed float64
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.Frames <= 1 || a.FPS <= 0 {
		return
	}
	a.elapsed += dt
	step := 1 / a.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame = (a.frame + 1) % a.Frames
	}
}

// Frame returns the current frame index.
func (a Animation) Frame() int {
	return a.frame
}

// Bullet is a player or enemy missile.
type Bullet struct {
	Pos  core.Vec2
	Dir  float64 // -1 travels up, +1 travels down
	Boss bool    // fired by a boss; drawn with the alternate sprite
	anim Animation
}

// NewBullet creates a bullet with a spinning animation.
func NewBullet(pos core.Vec2, dir float64, boss bool, frames int, fps float64) Bullet {
	return Bullet{
		Pos:  pos,
		Dir:  dir,
		Boss: boss,
		anim: Animation{Frames: frames, FPS: fps},
	}
}

// Update moves the bullet along its direction and spins it.
func (b *Bullet) Update(dt, speed float64) {
	b.Pos.Y += speed * dt * b.Dir
	b.anim.Update(dt)
}

// OutOfBounds reports whether the bullet has left through the top edge.
// Only the top edge is checked, whatever the direction.
func (b Bullet) OutOfBounds() bool {
	return b.Pos.Y < 0
}

// Bounds returns the collision box for a bullet of the given size.
func (b Bullet) Bounds(size core.Vec2) core.RectF {
	return core.BoxAt(b.Pos, size)
}

// Frame returns the animation frame.
func (b Bullet) Frame() int {
	return b.anim.Frame()
}

// Rotation returns the sprite rotation in radians.
func (b Bullet) Rotation() float64 {
	return b.Dir * math.Pi / 2
}
