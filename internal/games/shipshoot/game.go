// Package shipshoot implements a fixed-shooter arcade game.
// The ship guards the bottom row against a marching wave, a periodic boss,
// and their bullets, with destructible shields in between.
package shipshoot

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/shipshoot/internal/config"
	"github.com/vovakirdan/shipshoot/internal/core"
	"github.com/vovakirdan/shipshoot/internal/highscore"
)

// DefaultName is recorded when the player starts without typing a name.
const DefaultName = "PLAYER"

// Phase is the top-level screen.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlay
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Game runs the title, play and game over screens around PlayMode.
type Game struct {
	cfg   config.ShipShootConfig
	store highscore.Store
	table *highscore.Table

	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase    Phase
	name     []rune
	prevKeys map[core.Key]bool
	play     *PlayMode
	paused   bool

	lastScore int
	lastRank  int // -1 when the last game did not make the table

	sounds []core.SoundEvent
	err    error
}

// New creates a game. The table is loaded from store once; a nil store
// keeps scores in memory only. A load error starts with an empty table and
// is reported through Err.
func New(cfg config.ShipShootConfig, store highscore.Store) *Game {
	g := &Game{
		cfg:      cfg,
		store:    store,
		prevKeys: make(map[core.Key]bool),
		lastRank: -1,
	}

	var entries []highscore.Entry
	if store != nil {
		var err error
		entries, err = store.Load()
		if err != nil {
			g.err = err
			entries = nil
		}
	}
	g.table = highscore.NewTable(entries)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shipshoot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ShipShoot"
}

// Reset returns to the title screen. The name and the table are kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	if g.play != nil {
		g.play.Close()
		g.sounds = append(g.sounds, g.play.DrainSounds()...)
		g.play = nil
	}
	g.phase = PhaseTitle
	g.paused = false
	g.prevKeys = make(map[core.Key]bool)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(g.runtime)
	}

	switch g.phase {
	case PhaseTitle:
		g.stepTitle(in)
	case PhasePlay:
		g.stepPlay(in)
	case PhaseGameOver:
		if g.pressed(in, core.KeySpace) {
			g.phase = PhaseTitle
		}
	}

	g.remember(in)

	sounds := g.sounds
	g.sounds = nil
	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *Game) stepTitle(in core.InputFrame) {
	if g.pressed(in, core.KeyEnter) {
		g.play = NewPlayMode(g.cfg, g.rng)
		g.sounds = append(g.sounds, g.play.DrainSounds()...)
		g.paused = false
		g.phase = PhasePlay
		return
	}

	if g.pressed(in, core.KeyBackspace) && len(g.name) > 0 {
		g.name = g.name[:len(g.name)-1]
	}
	for k := core.KeyA; k <= core.KeyZ; k++ {
		if g.pressed(in, k) && len(g.name) < g.cfg.Gameplay.NameMaxLen {
			g.name = append(g.name, k.Letter())
		}
	}
}

func (g *Game) stepPlay(in core.InputFrame) {
	if g.pressed(in, core.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.play.Update(g.runtime.TickSeconds(), in)
	g.sounds = append(g.sounds, g.play.DrainSounds()...)

	if g.play.IsGameOver() {
		g.finish()
	}
}

// finish records the result, persists the table and closes the session.
func (g *Game) finish() {
	name := g.PlayerName()
	score := g.play.Score()

	g.lastScore = score
	g.lastRank = g.table.Insert(name, score)

	var errs []error
	switch s := g.store.(type) {
	case nil:
	case highscore.Submitter:
		entries, err := s.Submit(highscore.Entry{Name: name, Score: score})
		if err != nil {
			errs = append(errs, err)
		}
		if entries != nil {
			g.table = highscore.NewTable(entries)
		}
	default:
		if err := g.store.Save(g.table.Entries()); err != nil {
			errs = append(errs, err)
		}
	}
	if r, ok := g.store.(highscore.Recorder); ok {
		if err := r.RecordGame(name, score); err != nil {
			errs = append(errs, err)
		}
	}
	g.err = errors.Join(g.err, errors.Join(errs...))

	g.play.Close()
	g.sounds = append(g.sounds, g.play.DrainSounds()...)
	g.play = nil
	g.paused = false
	g.phase = PhaseGameOver
}

// pressed reports a key that is down now and was up last tick.
func (g *Game) pressed(in core.InputFrame, k core.Key) bool {
	return in.Pressed(k) && !g.prevKeys[k]
}

func (g *Game) remember(in core.InputFrame) {
	for k := range g.prevKeys {
		delete(g.prevKeys, k)
	}
	for k, down := range in.Keys {
		if down {
			g.prevKeys[k] = true
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.lastScore
	if g.play != nil {
		score = g.play.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// PlayerName returns the typed name, or DefaultName if none was typed.
func (g *Game) PlayerName() string {
	if len(g.name) == 0 {
		return DefaultName
	}
	return string(g.name)
}

// Play returns the running session, or nil outside the play screen.
func (g *Game) Play() *PlayMode {
	return g.play
}

// HighScores returns the current table, highest first.
func (g *Game) HighScores() []highscore.Entry {
	return g.table.Entries()
}

// LastResult returns the score of the last finished game and its rank
// in the table, or -1 if it did not place.
func (g *Game) LastResult() (score, rank int) {
	return g.lastScore, g.lastRank
}

// Err returns and clears the pending load or persistence error.
func (g *Game) Err() error {
	err := g.err
	g.err = nil
	return err
}
