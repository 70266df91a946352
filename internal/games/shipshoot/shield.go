package shipshoot

import (
	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
)

// Shield is a fixed cluster of destructible pieces.
type Shield struct {
	Center    core.Vec2
	Pieces    []core.Vec2 // top-left corners
	PieceSize core.Vec2
}

// NewShield lays pieces on a square grid of the given radius and spacing
// around center, row by row. Pieces never come back.
func NewShield(center core.Vec2, cfg config.ShieldConfig) Shield {
	s := Shield{
		Center:    center,
		PieceSize: core.Vec2{X: cfg.PieceWidth, Y: cfg.PieceHeight},
	}
	for y := center.Y - cfg.Radius; y <= center.Y+cfg.Radius; y += cfg.Spacing {
		for x := center.X - cfg.Radius; x <= center.X+cfg.Radius; x += cfg.Spacing {
			s.Pieces = append(s.Pieces, core.Vec2{X: x, Y: y})
		}
	}
	return s
}

// CheckCollision removes the last piece overlapping box and reports whether
// one was removed. A single call consumes at most one piece.
func (s *Shield) CheckCollision(box core.RectF) bool {
	for i := len(s.Pieces) - 1; i >= 0; i-- {
		if core.BoxAt(s.Pieces[i], s.PieceSize).Overlaps(box) {
			s.Pieces = append(s.Pieces[:i], s.Pieces[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the remaining piece count.
func (s *Shield) Len() int {
	return len(s.Pieces)
}
