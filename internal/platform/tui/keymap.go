package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shipshoot/internal/core"
)

// Terminals report key presses and auto-repeats, never releases. Movement
// keys are therefore held for a few ticks after each press so the ship keeps
// moving across the gap before the terminal starts repeating.
const defaultMoveHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a logical key.
// Returns the key (may be KeyNone) and whether it's a quit request.
// Letters are never quit keys, since they spell the player's name.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return core.KeyNone, true
	case tea.KeyUp:
		return core.KeyUp, false
	case tea.KeyDown:
		return core.KeyDown, false
	case tea.KeyLeft:
		return core.KeyLeft, false
	case tea.KeyRight:
		return core.KeyRight, false
	case tea.KeySpace:
		return core.KeySpace, false
	case tea.KeyEnter:
		return core.KeyEnter, false
	case tea.KeyBackspace, tea.KeyDelete:
		return core.KeyBackspace, false
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.KeyNone, false
		}
		return runeKey(msg.Runes[0]), false
	}
	return core.KeyNone, false
}

func runeKey(r rune) core.Key {
	if r == ' ' {
		return core.KeySpace
	}
	return core.LetterKey(r)
}

// isMovement reports keys that are held between repeats.
func isMovement(k core.Key) bool {
	switch k {
	case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight:
		return true
	}
	return false
}

// InputState collects key presses and mouse motion between ticks and turns
// them into one InputFrame per tick.
//
// P is both the pause key and a name letter; Frame reports it as KeyPause and
// as the letter, and the game decides which one it needs on each screen.
type InputState struct {
	mapper    *KeyMapper
	holdTicks int
	held      map[core.Key]int // remaining ticks per key
	mouse     core.Vec2

	lastX, lastY int
	hasMouse     bool
}

// NewInputState creates an input state. holdTicks <= 0 uses the default.
func NewInputState(holdTicks int) *InputState {
	if holdTicks <= 0 {
		holdTicks = defaultMoveHoldTicks
	}
	return &InputState{
		mapper:    NewKeyMapper(),
		holdTicks: holdTicks,
		held:      make(map[core.Key]int),
	}
}

// HandleKey records a key message. Returns true for a quit request.
func (s *InputState) HandleKey(msg tea.KeyMsg) bool {
	k, quit := s.mapper.MapKey(msg)
	if quit {
		return true
	}
	if k == core.KeyNone {
		return false
	}

	if isMovement(k) {
		s.held[k] = s.holdTicks
		// Reversing direction releases the opposite key at once
		switch k {
		case core.KeyLeft:
			delete(s.held, core.KeyRight)
		case core.KeyRight:
			delete(s.held, core.KeyLeft)
		case core.KeyUp:
			delete(s.held, core.KeyDown)
		case core.KeyDown:
			delete(s.held, core.KeyUp)
		}
		return false
	}

	s.held[k] = 1
	if k == core.LetterKey('p') {
		s.held[core.KeyPause] = 1
	}
	return false
}

// HandleMouse accumulates pointer motion in cells. The first event only
// anchors the pointer.
func (s *InputState) HandleMouse(msg tea.MouseMsg) {
	if s.hasMouse {
		s.mouse = s.mouse.Add(core.Vec2{X: float64(msg.X - s.lastX), Y: float64(msg.Y - s.lastY)})
	}
	s.lastX, s.lastY = msg.X, msg.Y
	s.hasMouse = true
}

// Frame builds the input for the next tick and ages held keys.
// Mouse motion is converted from cells to world units by scale.
func (s *InputState) Frame(scale core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	for k, ticks := range s.held {
		in.Press(k)
		if ticks <= 1 {
			delete(s.held, k)
		} else {
			s.held[k] = ticks - 1
		}
	}
	in.MoveMouse(core.Vec2{X: s.mouse.X * scale.X, Y: s.mouse.Y * scale.Y})
	s.mouse = core.Vec2{}
	return in
}

// Reset drops every held key and pending motion.
func (s *InputState) Reset() {
	for k := range s.held {
		delete(s.held, k)
	}
	s.mouse = core.Vec2{}
	s.hasMouse = false
}
