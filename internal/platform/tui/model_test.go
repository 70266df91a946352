package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
	"github.com/vovakirdan/shipshoot/internal/games/shipshoot"
	"github.com/vovakirdan/shipshoot/internal/highscore"
)

// recordingSink keeps every event it is given.
type recordingSink struct {
	events []core.SoundEvent
}

func (s *recordingSink) Play(ev core.SoundEvent) { s.events = append(s.events, ev) }
func (s *recordingSink) Close() error            { return nil }

// failingStore cannot load anything.
type failingStore struct{}

func (failingStore) Load() ([]highscore.Entry, error) { return nil, errors.New("no disk") }
func (failingStore) Save([]highscore.Entry) error     { return nil }

func newTestModel(store highscore.Store, sink *recordingSink) Model {
	cfg := config.DefaultShipShootConfig()
	game := shipshoot.New(cfg, store)
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{
		World:         core.Vec2{X: cfg.World.Width, Y: cfg.World.Height},
		Sink:          sink,
		ScreenshotDir: os.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartsGameAndForwardsSounds(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(nil, sink)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	if len(sink.events) != 1 || sink.events[0].Kind != core.SoundSongPlay {
		t.Fatalf("sink got %+v, expected the song to start", sink.events)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})

	last := sink.events[len(sink.events)-1]
	if last.Kind != core.SoundSfx || last.Name != "laser" {
		t.Errorf("last event = %+v, expected the laser", last)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(nil, &recordingSink{})
	m.Init()
	m = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "ENTER NAME") {
		t.Error("title screen missing from view")
	}
	if !strings.Contains(view, "ShipShoot") {
		t.Error("status bar missing from view")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, expected 25", lines)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(nil, &recordingSink{})
	m.Init()
	m = update(t, m, runes("x"))
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "X_") {
		t.Error("typed name lost on resize")
	}
}

func TestModelResizeDropsMouseAnchor(t *testing.T) {
	m := newTestModel(nil, &recordingSink{})
	m.Init()
	m = update(t, m, tea.MouseMsg{X: 10, Y: 5})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	m = update(t, m, tea.MouseMsg{X: 30, Y: 5})

	in := m.input.Frame(m.mouseScale())
	if !in.Mouse.IsZero() {
		t.Errorf("mouse = %v, expected no jump across the resize", in.Mouse)
	}
	if in.Pressed(core.KeyLeft) {
		t.Error("held keys should be dropped on resize")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil, &recordingSink{})
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMouseScale(t *testing.T) {
	m := newTestModel(nil, &recordingSink{})

	scale := m.mouseScale()
	if scale.X != 10 || scale.Y != 640.0/24.0 {
		t.Errorf("scale = %v, expected (10, %v)", scale, 640.0/24.0)
	}
}

func TestModelSurvivesLoadError(t *testing.T) {
	m := newTestModel(failingStore{}, &recordingSink{})
	m.Init()
	m = update(t, m, TickMsg{})

	if !strings.Contains(m.View(), "ENTER NAME") {
		t.Error("a load error should not stop the game")
	}
}
