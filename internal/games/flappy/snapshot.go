package flappy

// BirdView is a read-only copy of the bird's state.
type BirdView struct {
	X, Y      float64
	Velocity  float64
	Rotation  float64
	FlapTicks int
	Radius    float64
}

// Snapshot captures everything a renderer or test needs about one tick.
// It shares no memory with the game.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Bird       BirdView
	Pipes      []Pipe
	Score      int
	Best       int
	CrashCause string // Empty unless Phase is PhaseGameOver
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tickCount,
		Phase: g.phase,
		Bird: BirdView{
			X:         g.bird.X,
			Y:         g.bird.Y,
			Velocity:  g.bird.Velocity,
			Rotation:  g.bird.Rotation,
			FlapTicks: g.bird.FlapTicks,
			Radius:    g.bird.Radius,
		},
		Pipes:      g.pipes.Pipes(),
		Score:      g.score.Current(),
		Best:       g.score.Best(),
		CrashCause: g.crashCause,
	}
}

// NextPipe returns the first pipe whose right edge is still ahead of the
// bird's left edge, or false when there is none.
func (s Snapshot) NextPipe() (Pipe, bool) {
	for _, p := range s.Pipes {
		if p.Right() > s.Bird.X-s.Bird.Radius {
			return p, true
		}
	}
	return Pipe{}, false
}
