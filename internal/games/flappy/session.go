package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Session is one play-through: the actor, the course and the score.
// A new round replaces the whole Session rather than resetting fields.
type Session struct {
	Actor   Actor
	Course  Course
	Score   int
	Phase   core.Phase
	Verdict Verdict // Why the round ended; VerdictClear while playing
	Tick    int
}

// NewSession creates a fresh round drawing gap positions from rng.
func NewSession(rng *rand.Rand) *Session {
	return &Session{
		Actor:  NewActor(),
		Course: NewCourse(rng),
		Phase:  core.PhasePlaying,
	}
}

// Step advances the round by one tick. It does nothing once the round is
// over. Returns true on the tick the round ends.
func (s *Session) Step(in ActorInput, rng *rand.Rand) bool {
	if s.Phase != core.PhasePlaying {
		return false
	}
	s.Tick++

	s.Actor.Update(in)
	s.Score += s.Course.Advance(s.Actor.X)

	s.Verdict = Judge(s.Actor, s.Course.Obstacles())
	if s.Verdict.Terminal() {
		s.Phase = core.PhaseGameOver
	}

	s.Course.Maintain(rng)
	return s.Phase == core.PhaseGameOver
}

// State returns the platform-facing summary of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score: s.Score,
		Phase: s.Phase,
		Tick:  s.Tick,
	}
}
