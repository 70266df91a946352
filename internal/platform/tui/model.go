package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shipshoot/internal/audio"
	"github.com/vovakirdan/shipshoot/internal/core"
)

// Game is what the model drives. Games contain pure logic with no Bubble Tea
// dependency; the model handles input mapping, timing, rendering and sound.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for the status bar.
	Title() string

	// Reset initializes the game state. Called once before the first tick.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// Err returns and clears a pending persistence error.
	Err() error
}

// Options configures a Model.
type Options struct {
	// World is the game's world size, used to scale mouse motion.
	World core.Vec2
	// Sink receives the game's sound events. Nil discards them.
	Sink audio.Sink
	// Muted is shown in the status bar.
	Muted bool
	// Logger receives persistence errors. Nil discards them.
	Logger *log.Logger
	// HoldTicks is how long a movement key stays down after each press.
	HoldTicks int
	// ScreenshotDir is where ctrl+s writes the screen. Empty uses ~/.shipshoot/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	input     *InputState
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is kept for the status bar.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config: cfg,
		opts:   opts,
		input:  NewInputState(opts.HoldTicks),
	}
}

func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.reportErr()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}
	if m.input.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation works in
// world units, so only the screen buffer changes. The mouse anchor is
// in old cells and is dropped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.input.Reset()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame(m.mouseScale()))
	m.gameState = result.State

	audio.PlayAll(m.opts.Sink, result.Sounds)
	m.reportErr()

	return m, tickCmd(m.config.TickRate)
}

// mouseScale converts one cell of pointer motion to world units.
func (m Model) mouseScale() core.Vec2 {
	w, h := m.screen.Width(), m.screen.Height()
	if w == 0 || h == 0 || m.opts.World.IsZero() {
		return core.Vec2{}
	}
	return core.Vec2{X: m.opts.World.X / float64(w), Y: m.opts.World.Y / float64(h)}
}

func (m Model) reportErr() {
	if err := m.game.Err(); err != nil {
		m.opts.Logger.Error("high score persistence failed", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".shipshoot", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		view += "\n" + RenderStatus(m.game.Title(), m.gameState, m.opts.Muted, m.config.ScreenW)
	}
	return view
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
