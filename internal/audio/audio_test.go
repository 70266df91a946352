package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/shipshoot/internal/core"
)

func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 256)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestLaserIsShort(t *testing.T) {
	sr := beep.SampleRate(8000)
	n := drain(NewLaser(sr), sr.N(10 * time.Second))

	if expected := sr.N(120 * time.Millisecond); n != expected {
		t.Errorf("laser produced %d samples, expected %d", n, expected)
	}
}

func TestLaserStaysInRange(t *testing.T) {
	s := NewLaser(beep.SampleRate(8000))
	buf := make([][2]float64, 1024)
	n, _ := s.Stream(buf)

	for i := 0; i < n; i++ {
		if buf[i][0] > 1 || buf[i][0] < -1 {
			t.Fatalf("sample %d out of range: %v", i, buf[i][0])
		}
	}
}

func TestSpaceJamIsEndless(t *testing.T) {
	sr := beep.SampleRate(8000)
	limit := sr.N(5 * time.Second)

	if n := drain(NewSpaceJam(sr), limit); n < limit {
		t.Errorf("song ended after %d samples", n)
	}
}

// countingSink records the order of events.
type countingSink struct {
	names []string
}

func (s *countingSink) Play(ev core.SoundEvent) { s.names = append(s.names, ev.Name) }
func (s *countingSink) Close() error            { return nil }

func TestPlayAllKeepsOrder(t *testing.T) {
	s := &countingSink{}
	PlayAll(s, []core.SoundEvent{core.SongPlay("spacejam", true, 0.2), core.Sfx("laser"), core.SongStop()})

	if len(s.names) != 3 || s.names[0] != "spacejam" || s.names[1] != "laser" || s.names[2] != "" {
		t.Errorf("events = %q", s.names)
	}
	PlayAll(Nop{}, []core.SoundEvent{core.Sfx("laser")})
}

func TestWithVolumeSilence(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := WithVolume(NewLaser(sr), 0)
	buf := make([][2]float64, 512)
	n, _ := s.Stream(buf)

	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, buf[i][0])
		}
	}
}
