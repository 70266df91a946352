package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Builder creates a fresh streamer for a named sound.
type Builder func(sr beep.SampleRate) beep.Streamer

// Library maps sound names to builders.
type Library map[string]Builder

// DefaultLibrary synthesizes the sounds the game asks for.
func DefaultLibrary() Library {
	return Library{
		"laser":    NewLaser,
		"spacejam": NewSpaceJam,
	}
}

// LaserGenerator is a short falling sweep.
type LaserGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewLaser creates a 120ms laser blip.
func NewLaser(sr beep.SampleRate) beep.Streamer {
	return &LaserGenerator{sr: sr, total: sr.N(120 * time.Millisecond)}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)

		// 1200Hz down to 300Hz
		freq := 1200 - 900*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Exp(-progress * 4)

		// Square-ish tone for an arcade feel
		sample := 0.25 * envelope * math.Tanh(3*math.Sin(g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// SpaceJamGenerator is an endless bass arpeggio with a kick on each bar.
type SpaceJamGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int // samples per note
}

// spaceJamNotes is one bar of the arpeggio, in Hz.
var spaceJamNotes = []float64{110, 165, 220, 165, 98, 147, 196, 147}

// NewSpaceJam creates the background song.
func NewSpaceJam(sr beep.SampleRate) beep.Streamer {
	return &SpaceJamGenerator{sr: sr, step: sr.N(200 * time.Millisecond)}
}

func (g *SpaceJamGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	bar := g.step * len(spaceJamNotes)
	for i := range samples {
		note := spaceJamNotes[(g.pos/g.step)%len(spaceJamNotes)]
		inNote := g.pos % g.step
		t := float64(g.pos) / float64(g.sr)

		pluck := math.Exp(-float64(inNote) / float64(g.step) * 3)
		bass := 0.3 * pluck * math.Sin(2*math.Pi*note*t)

		kick := 0.0
		kickLen := g.sr.N(80 * time.Millisecond)
		if inBar := g.pos % bar; inBar < kickLen {
			env := 1 - float64(inBar)/float64(kickLen)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+env)*t)
		}

		sample := bass + kick
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SpaceJamGenerator) Err() error {
	return nil
}

// WithVolume scales a streamer linearly; 0 or less is silent.
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
