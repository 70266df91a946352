package shipshoot

// Snapshot contains the observable game state for tests and debugging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Phase  string
	Name   string
	Paused bool

	// Session state; zero outside the play screen
	Score         int
	Lives         int
	Respawning    bool
	PlayerX       float64
	PlayerY       float64
	WaveSpeed     float64
	Regulars      int
	Bosses        int
	PlayerBullets int
	EnemyBullets  int
	ShieldPieces  []int

	HighScores int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      g.phase.String(),
		Name:       string(g.name),
		Paused:     g.paused,
		HighScores: g.table.Len(),
	}

	p := g.play
	if p == nil {
		s.Score = g.lastScore
		return s
	}

	s.Score = p.Score()
	s.Lives = p.Lives()
	s.Respawning = p.Respawning()
	s.PlayerX = p.Player.X
	s.PlayerY = p.Player.Y
	s.WaveSpeed = p.Wave.Speed
	s.Regulars = p.Wave.Regulars()
	s.Bosses = p.Wave.Len() - s.Regulars
	s.PlayerBullets = len(p.PlayerBullets)
	s.EnemyBullets = len(p.EnemyBullets)
	for _, sh := range p.Shields {
		s.ShieldPieces = append(s.ShieldPieces, sh.Len())
	}
	return s
}
