package shipshoot

import (
	"fmt"

	"github.com/vovakirdan/shipshoot/internal/core"
)

// Sprite names handed to the renderer.
const (
	SpriteBullet     = "missile"
	SpriteBossBullet = "missile2"
	SpritePlayer     = "ship"
	SpriteEnemy      = "shipYellow_manned"
	SpriteBoss       = "shipBeige_manned"
	SpriteShield     = "shield"
	SpriteLife       = "life"
	SpriteScore      = "score"
)

// Sprite scales, relative to the source textures.
const (
	scaleBullet = 0.75
	scaleEnemy  = 0.5
	scalePlayer = 0.1
	scaleShield = 0.5
	scaleLife   = 0.05
)

// Drawable is one thing to draw this frame.
type Drawable struct {
	Sprite   string
	Pos      core.Vec2 // top-left, world units
	Size     core.Vec2
	Frame    int
	Scale    float64
	Rotation float64
	Text     string // SpriteScore only
}

// BackgroundSprite returns the sprite name of background layer i.
func BackgroundSprite(i int) string {
	return fmt.Sprintf("bgnd%d", i)
}

// Drawables lists what to draw, back to front: background layers, player
// bullets, enemy bullets, the ship unless respawning, enemies, shield pieces,
// life icons, then the score.
func (p *PlayMode) Drawables() []Drawable {
	var out []Drawable

	for i, off := range p.bgnd {
		out = append(out, Drawable{
			Sprite: BackgroundSprite(i),
			Pos:    core.Vec2{X: -off},
			Size:   core.Vec2{X: p.cfg.World.Width, Y: p.cfg.World.Height},
			Scale:  1,
		})
	}

	for _, b := range p.PlayerBullets {
		out = append(out, p.bulletDrawable(b))
	}
	for _, b := range p.EnemyBullets {
		out = append(out, p.bulletDrawable(b))
	}

	if !p.Respawning() {
		frame := 0
		if p.Thrusting() {
			frame = 1
		}
		out = append(out, Drawable{
			Sprite: SpritePlayer,
			Pos:    p.Player,
			Size:   p.PlayerSize,
			Frame:  frame,
			Scale:  scalePlayer,
		})
	}

	for _, e := range p.Wave.Enemies {
		sprite := SpriteEnemy
		if e.Kind == EnemyBoss {
			sprite = SpriteBoss
		}
		out = append(out, Drawable{
			Sprite: sprite,
			Pos:    e.Pos,
			Size:   p.Wave.Size(e.Kind),
			Scale:  scaleEnemy,
		})
	}

	for _, s := range p.Shields {
		for _, piece := range s.Pieces {
			out = append(out, Drawable{
				Sprite: SpriteShield,
				Pos:    piece,
				Size:   s.PieceSize,
				Scale:  scaleShield,
			})
		}
	}

	for i := 0; i < p.lives; i++ {
		out = append(out, Drawable{
			Sprite: SpriteLife,
			Pos:    core.Vec2{X: float64(i) * 20, Y: 10},
			Size:   core.Vec2{X: 16, Y: 16},
			Scale:  scaleLife,
		})
	}

	out = append(out, Drawable{
		Sprite: SpriteScore,
		Pos:    core.Vec2{X: 0, Y: 50},
		Scale:  1,
		Text:   fmt.Sprintf("Score: %d", p.score),
	})

	return out
}

func (p *PlayMode) bulletDrawable(b Bullet) Drawable {
	sprite := SpriteBullet
	if b.Boss {
		sprite = SpriteBossBullet
	}
	return Drawable{
		Sprite:   sprite,
		Pos:      b.Pos,
		Size:     p.BulletSize,
		Frame:    b.Frame(),
		Scale:    scaleBullet,
		Rotation: b.Rotation(),
	}
}
