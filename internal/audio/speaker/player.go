// Package speaker plays sound events on the local audio device.
// It is the only package that links the device driver; everything else
// talks to audio.Sink.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/shipshoot/internal/audio"
	"github.com/vovakirdan/shipshoot/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// A song that does not loop plays this long.
	songOnce = 30 * time.Second
)

// Player mixes effects and one song onto the speaker.
type Player struct {
	mu      sync.Mutex
	sr      beep.SampleRate
	mixer   *beep.Mixer
	song    *beep.Ctrl
	library audio.Library
	logger  *log.Logger

	// speaker Lock/Unlock once the device is running
	lock   func()
	unlock func()
}

// NewPlayer initializes the speaker and starts the mixer on it.
func NewPlayer(library audio.Library, logger *log.Logger) (*Player, error) {
	if err := beepspeaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	p := newPlayer(sampleRate, library, logger)
	p.lock, p.unlock = beepspeaker.Lock, beepspeaker.Unlock
	beepspeaker.Play(p.mixer)
	return p, nil
}

// newPlayer builds a player that is not attached to a device.
func newPlayer(sr beep.SampleRate, library audio.Library, logger *log.Logger) *Player {
	if library == nil {
		library = audio.DefaultLibrary()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		sr:      sr,
		mixer:   &beep.Mixer{},
		library: library,
		logger:  logger,
		lock:    func() {},
		unlock:  func() {},
	}
}

// Play handles one event. Unknown sound names are logged and skipped.
func (p *Player) Play(ev core.SoundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Kind {
	case core.SoundSfx:
		build, ok := p.library[ev.Name]
		if !ok {
			p.logger.Debug("unknown sound effect", "name", ev.Name)
			return
		}
		s := build(p.sr)
		if ev.Volume > 0 {
			s = audio.WithVolume(s, ev.Volume)
		}
		p.add(s)

	case core.SoundSongPlay:
		build, ok := p.library[ev.Name]
		if !ok {
			p.logger.Debug("unknown song", "name", ev.Name)
			return
		}
		p.stopSong()

		s := build(p.sr)
		if !ev.Loop {
			s = beep.Take(p.sr.N(songOnce), s)
		}
		if ev.Volume > 0 {
			s = audio.WithVolume(s, ev.Volume)
		}
		p.song = &beep.Ctrl{Streamer: s, Paused: false}
		p.add(p.song)

	case core.SoundSongStop:
		p.stopSong()
	}
}

// Playing reports whether a song is currently active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.song != nil
}

// Close stops everything still playing.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSong()
	p.lock()
	p.mixer.Clear()
	p.unlock()
	return nil
}

func (p *Player) add(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

func (p *Player) stopSong() {
	if p.song == nil {
		return
	}
	p.lock()
	p.song.Paused = true
	p.song.Streamer = nil
	p.unlock()
	p.song = nil
}

// Open returns a speaker-backed player, or Nop when muted or when the
// device cannot be opened. The returned error is informational.
func Open(muted bool, logger *log.Logger) (audio.Sink, error) {
	if muted {
		return audio.Nop{}, nil
	}
	p, err := NewPlayer(audio.DefaultLibrary(), logger)
	if err != nil {
		return audio.Nop{}, err
	}
	return p, nil
}

var _ audio.Sink = (*Player)(nil)
