package shipshoot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/shipshoot/internal/core"
)

// Glyphs for each sprite.
const (
	glyphPlayer = "/^\\"
	glyphThrust = "'"
	glyphEnemy  = "<##>"
	glyphBoss   = "<=O=>"
	glyphShield = '█'
	glyphLife   = '♥'
)

// Bullet spin frames.
var (
	bulletFrames     = []rune{'|', '/', '-', '\\'}
	bossBulletFrames = []rune{'*', '+', 'x', '+'}
)

// Star glyph per background layer, far to near.
var starGlyphs = []rune{'.', '·', '*'}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhasePlay:
		g.renderPlay(dst)
		if g.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	top := core.Max(1, h/2-6)

	dst.DrawTextCenteredColor(top, "S H I P S H O O T", core.ColorBrightCyan)
	dst.DrawTextCenteredColor(top+2, glyphEnemy+"  "+glyphEnemy+"  "+glyphBoss+"  "+glyphEnemy+"  "+glyphEnemy, core.ColorYellow)

	dst.DrawTextCentered(top+5, "ENTER NAME")
	name := string(g.name) + "_"
	dst.DrawTextCenteredColor(top+6, name, core.ColorBrightWhite)

	dst.DrawTextCenteredColor(top+8, "Type A-Z, Backspace to edit, Enter to start", core.ColorGray)
	dst.DrawTextCenteredColor(top+9, "Arrows/mouse to move, Space to fire, P to pause", core.ColorGray)

	if best := g.table.Best(); g.table.Len() > 0 {
		dst.DrawTextCenteredColor(top+11, fmt.Sprintf("HIGH SCORE %d", best), core.ColorBrightYellow)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	h := dst.Height()
	w := dst.Width()

	starField(dst, 0, 0)

	dst.DrawTextCenteredColor(1, "GAME OVER", core.ColorBrightRed)
	if h < 6 {
		return
	}

	score, rank := g.LastResult()
	dst.DrawTextCentered(2, fmt.Sprintf("%s scored %d", g.PlayerName(), score))

	nameX := core.Max(0, w/2-16)
	scoreX := core.Min(w-8, w/2+10)
	y := 4
	for i, e := range g.table.Entries() {
		if y >= h-2 {
			break
		}
		c := core.ColorWhite
		if i == rank {
			c = core.ColorBrightGreen
		}
		dst.DrawTextColor(nameX, y, fmt.Sprintf("%2d. %s", i+1, e.Name), c)
		dst.DrawTextColor(scoreX, y, fmt.Sprintf("%6d", e.Score), c)
		y++
	}

	dst.DrawTextCenteredColor(h-1, "PRESS SPACE TO RETURN TO TITLE SCREEN", core.ColorGray)
}

func (g *Game) renderPlay(dst *core.Screen) {
	p := g.play
	if p == nil {
		return
	}
	v := viewport{w: dst.Width(), h: dst.Height(), worldW: g.cfg.World.Width, worldH: g.cfg.World.Height}

	for _, d := range p.Drawables() {
		switch {
		case strings.HasPrefix(d.Sprite, "bgnd"):
			layer, _ := strconv.Atoi(strings.TrimPrefix(d.Sprite, "bgnd"))
			starField(dst, layer, v.x(-d.Pos.X))

		case d.Sprite == SpriteBullet:
			x, y := v.center(d)
			dst.SetColor(x, y, bulletFrames[d.Frame%len(bulletFrames)], core.ColorBrightCyan)

		case d.Sprite == SpriteBossBullet:
			x, y := v.center(d)
			dst.SetColor(x, y, bossBulletFrames[d.Frame%len(bossBulletFrames)], core.ColorBrightRed)

		case d.Sprite == SpritePlayer:
			x, y := v.center(d)
			drawGlyph(dst, x, y, glyphPlayer, core.ColorBrightGreen)
			if d.Frame == 1 {
				drawGlyph(dst, x, y+1, glyphThrust, core.ColorOrange)
			}

		case d.Sprite == SpriteEnemy:
			x, y := v.center(d)
			drawGlyph(dst, x, y, glyphEnemy, core.ColorYellow)

		case d.Sprite == SpriteBoss:
			x, y := v.center(d)
			drawGlyph(dst, x, y, glyphBoss, core.ColorBrightMagenta)

		case d.Sprite == SpriteShield:
			x, y := v.center(d)
			dst.SetColor(x, y, glyphShield, core.ColorGreen)

		case d.Sprite == SpriteLife:
			dst.SetColor(v.x(d.Pos.X), 0, glyphLife, core.ColorRed)

		case d.Sprite == SpriteScore:
			text := d.Text
			dst.DrawTextColor(dst.Width()-len(text)-1, 0, text, core.ColorBrightWhite)
		}
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	w, h           int
	worldW, worldH float64
}

func (v viewport) x(wx float64) int {
	return int(wx * float64(v.w) / v.worldW)
}

func (v viewport) y(wy float64) int {
	return int(wy * float64(v.h) / v.worldH)
}

// center returns the cell under the middle of a drawable.
func (v viewport) center(d Drawable) (int, int) {
	return v.x(d.Pos.X + d.Size.X/2), v.y(d.Pos.Y + d.Size.Y/2)
}

// drawGlyph draws text horizontally centered on x.
func drawGlyph(dst *core.Screen, x, y int, glyph string, c core.Color) {
	dst.DrawTextColor(x-len([]rune(glyph))/2, y, glyph, c)
}

// starField scatters a fixed pattern of stars for one layer, shifted left by offset cells.
func starField(dst *core.Screen, layer, offset int) {
	w, h := dst.Width(), dst.Height()
	if w == 0 {
		return
	}
	glyph := starGlyphs[layer%len(starGlyphs)]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx := ((x+offset)%w + w) % w
			if starHash(wx, y, layer)%53 == 0 {
				dst.SetColor(x, y, glyph, core.ColorGray)
			}
		}
	}
}

func starHash(x, y, layer int) uint32 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(layer+1)*83492791
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
