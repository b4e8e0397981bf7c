package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ActorInput is the per-tick control state for the actor.
type ActorInput struct {
	Flap   bool // Flap key went down this tick
	Thrust bool // Flap key is held this tick
}

// Actor is the player-controlled entity. X never changes.
type Actor struct {
	X        float64
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive is downward
}

// NewActor returns an actor at the start position, at rest.
func NewActor() Actor {
	return Actor{X: ActorStartX, Y: ActorStartY}
}

// Update applies one tick of input and gravity.
// Velocity changes first, then the position integrates it.
func (a *Actor) Update(in ActorInput) {
	if in.Flap {
		a.Velocity = -FlapImpulse
	}

	if in.Thrust {
		a.Velocity = -FlapImpulse * BoostFactor
	} else {
		a.Velocity += Gravity
	}

	a.Y += a.Velocity
}

// Horizontal returns the actor's hitbox span on the x axis.
func (a Actor) Horizontal() core.Span {
	return core.SpanOf(a.X, ActorSize)
}

// Vertical returns the actor's hitbox span on the y axis.
func (a Actor) Vertical() core.Span {
	return core.SpanOf(a.Y, ActorSize)
}
