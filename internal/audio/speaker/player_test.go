package speaker

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/shipshoot/internal/audio"
	"github.com/vovakirdan/shipshoot/internal/core"
)

func testPlayer() *Player {
	return newPlayer(beep.SampleRate(8000), audio.DefaultLibrary(), log.New(io.Discard))
}

func TestPlayerEffects(t *testing.T) {
	p := testPlayer()

	p.Play(core.Sfx("laser"))
	p.Play(core.Sfx("laser"))
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected 2", p.mixer.Len())
	}

	p.Play(core.Sfx("kazoo"))
	if p.mixer.Len() != 2 {
		t.Error("unknown effects should be ignored")
	}
}

func TestPlayerSongLifecycle(t *testing.T) {
	p := testPlayer()

	p.Play(core.SongPlay("spacejam", true, 0.2))
	if !p.Playing() {
		t.Fatal("song should be playing")
	}
	first := p.song

	// Starting again replaces the song
	p.Play(core.SongPlay("spacejam", true, 0.2))
	if !first.Paused {
		t.Error("previous song should be paused")
	}

	p.Play(core.SongStop())
	if p.Playing() {
		t.Error("song should be stopped")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if p.mixer.Len() != 0 {
		t.Error("Close should clear the mixer")
	}
}

func TestOpenMuted(t *testing.T) {
	sink, err := Open(true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(audio.Nop); !ok {
		t.Errorf("muted Open should return Nop, got %T", sink)
	}
	audio.PlayAll(sink, []core.SoundEvent{core.Sfx("laser"), core.SongStop()})
}
