// Package core provides fundamental types and utilities shared by the simulation
// and the terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer cell box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// RectF is an axis-aligned box in world units, stored by its edges.
// A degenerate box (Top == Bottom) is valid and is used for the player's
// single-row play area.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds the box whose top-left corner is pos with the given size.
func BoxAt(pos, size Vec2) RectF {
	return RectF{Left: pos.X, Top: pos.Y, Right: pos.X + size.X, Bottom: pos.Y + size.Y}
}

// Overlaps reports whether two boxes overlap with positive area.
// Touching edges do not count.
func (r RectF) Overlaps(o RectF) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

// Clamp moves p onto the closest point inside r.
func (r RectF) Clamp(p Vec2) Vec2 {
	return Vec2{X: ClampF(p.X, r.Left, r.Right), Y: ClampF(p.Y, r.Top, r.Bottom)}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
