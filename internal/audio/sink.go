// Package audio plays the sound events the game emits.
package audio

import "github.com/vovakirdan/shipshoot/internal/core"

// Sink consumes sound events. Play must not block the game loop.
type Sink interface {
	Play(ev core.SoundEvent)
	Close() error
}

// Nop discards every event. Used when muted, over SSH, or without a device.
type Nop struct{}

func (Nop) Play(core.SoundEvent) {}
func (Nop) Close() error         { return nil }

// PlayAll forwards a batch of events in order.
func PlayAll(s Sink, events []core.SoundEvent) {
	for _, ev := range events {
		s.Play(ev)
	}
}

var _ Sink = Nop{}
