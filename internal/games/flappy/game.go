// Package flappy implements a Flappy Bird-style game.
// The player keeps an actor airborne through the gaps of a procession of
// obstacles; every obstacle cleared scores a point.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "flappy"

// Game implements the session state machine on top of Session.
// While playing, each Step runs one tick of the round; once the round is
// over only the restart action is examined.
type Game struct {
	session *Session
	rng     *rand.Rand
	config  core.RuntimeConfig
}

// New creates a new game ready to play with the default configuration.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset reseeds the RNG and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.rng)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Phase == core.PhaseGameOver {
		if !in.Has(core.ActionRestart) {
			return core.StepResult{State: g.State()}
		}
		// Gap positions keep drawing from the same RNG, so a new round
		// differs from the last one.
		g.session = NewSession(g.rng)
		return core.StepResult{State: g.State(), Restarted: true}
	}

	ended := g.session.Step(ActorInput{
		Flap:   in.Has(core.ActionJump),
		Thrust: in.Has(core.ActionBoost),
	}, g.rng)

	result := core.StepResult{State: g.State(), Ended: ended}
	if ended {
		result.Reason = g.session.Verdict.String()
	}
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Verdict returns why the current round ended, or VerdictClear.
func (g *Game) Verdict() Verdict {
	return g.session.Verdict
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
