package flappy

// Playfield and physics constants. World units are pixels of a 600x400
// playfield; velocities are per tick at TickRate.
const (
	Width  = 600
	Height = 400

	Gravity     = 1.5 // Downward acceleration per tick
	FlapImpulse = 10  // Upward speed set by a single flap
	BoostFactor = 1.2 // Held thrust is FlapImpulse scaled by this

	ObstacleWidth = 50
	GapSize       = 150
	GapMargin     = 50 // Minimum distance from the gap to either playfield edge
	ObstacleSpeed = 5  // Leftward movement per tick
	SpawnSpacing  = 300

	ActorSize = 40

	TickRate = 30
)

// Derived values used by the rules below.
const (
	// ActorStartX is the fixed column the actor flies in.
	ActorStartX = Width / 4
	// ActorStartY is the vertical start position of a round.
	ActorStartY = Height / 2

	// MinGapTop and MaxGapTop bound the random gap position (inclusive).
	MinGapTop = GapMargin
	MaxGapTop = Height - GapSize - GapMargin

	// InitialObstacles is how many obstacles a fresh session starts with.
	InitialObstacles = 2
)
