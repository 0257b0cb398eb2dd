package flappy

// Scoreboard tracks the current run's score and the best score of the process.
type Scoreboard struct {
	current int
	best    int
}

// Increment adds a point and raises the best score when it is beaten.
func (s *Scoreboard) Increment() {
	s.current++
	if s.current > s.best {
		s.best = s.current
	}
}

// Reset zeroes the current score. The best score is kept.
func (s *Scoreboard) Reset() {
	s.current = 0
}

// Current returns the score of the current run.
func (s *Scoreboard) Current() int {
	return s.current
}

// Best returns the highest score reached so far.
func (s *Scoreboard) Best() int {
	return s.best
}
