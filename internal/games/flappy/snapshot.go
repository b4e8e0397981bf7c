package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of a session for renderers.
type Snapshot struct {
	Actor     Actor
	Obstacles []Obstacle
	Score     int
	Phase     core.Phase
	Verdict   Verdict
	Tick      int
}

// Snapshot captures the current session. The result does not alias game
// state and stays valid across later Steps.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Actor:     s.Actor,
		Obstacles: s.Course.Clone(),
		Score:     s.Score,
		Phase:     s.Phase,
		Verdict:   s.Verdict,
		Tick:      s.Tick,
	}
}

// Over reports whether the snapshot was taken after the round ended.
func (s Snapshot) Over() bool {
	return s.Phase == core.PhaseGameOver
}
