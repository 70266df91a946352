package core

// SoundKind distinguishes one-shot effects from looping songs.
type SoundKind int

const (
	SoundSfx SoundKind = iota
	SoundSongPlay
	SoundSongStop
)

// SoundEvent asks the audio collaborator to play or stop something.
// The simulation only emits these; mixing and devices live in the platform.
type SoundEvent struct {
	Kind   SoundKind
	Name   string
	Loop   bool
	Volume float64 // 0 means the sink's default
}

// Sfx builds a one-shot effect event.
func Sfx(name string) SoundEvent {
	return SoundEvent{Kind: SoundSfx, Name: name}
}

// SongPlay builds a song start event.
func SongPlay(name string, loop bool, volume float64) SoundEvent {
	return SoundEvent{Kind: SoundSongPlay, Name: name, Loop: loop, Volume: volume}
}

// SongStop builds a song stop event.
func SongStop() SoundEvent {
	return SoundEvent{Kind: SoundSongStop}
}
