package core

// Key is a logical key code, abstracted from the terminal's key names.
// Letters occupy a contiguous range starting at KeyA.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace     // fire, and "continue" on the game over screen
	KeyEnter     // confirm name on the title screen
	KeyBackspace // edit name on the title screen
	KeyPause     // P - pause/unpause during play
	KeyA
)

// KeyZ is the last letter key.
const KeyZ = KeyA + 25

// LetterKey returns the key for an ASCII letter (either case).
// Returns KeyNone for anything else.
func LetterKey(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	}
	return KeyNone
}

// IsLetter reports whether k is in the A-Z range.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// Letter returns the upper-case letter for a letter key, or 0.
func (k Key) Letter() rune {
	if !k.IsLetter() {
		return 0
	}
	return 'A' + rune(k-KeyA)
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyPause:
		return "Pause"
	}
	if k.IsLetter() {
		return string(k.Letter())
	}
	return "Unknown"
}

// Gamepad is the analog state of the first connected controller.
// Stick values are in [-1, 1]; positive StickY means "up".
type Gamepad struct {
	Connected bool
	StickX    float64
	StickY    float64
}

// InputFrame is the polled input state for one simulation tick.
// The platform fills it between ticks and clears it after each Step.
type InputFrame struct {
	// Keys holds the keys that are down this frame.
	Keys map[Key]bool
	// Mouse is the pointer movement since the previous frame, in world units.
	Mouse Vec2
	// Pad is the gamepad state; zero value means no controller.
	Pad Gamepad
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// Press marks a key as down for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Pressed returns true if the key is down this frame.
func (f InputFrame) Pressed(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// MoveMouse accumulates pointer movement for this frame.
func (f *InputFrame) MoveMouse(d Vec2) {
	f.Mouse = f.Mouse.Add(d)
}

// Clear resets keys and mouse movement for the next frame.
// Gamepad state is level-triggered and survives.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
	f.Mouse = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	clone.Mouse = f.Mouse
	clone.Pad = f.Pad
	return clone
}
