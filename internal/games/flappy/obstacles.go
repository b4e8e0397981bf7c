package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a vertical barrier with a passable gap.
type Obstacle struct {
	X      float64 // Horizontal position (left edge)
	GapTop int     // Y position where the gap starts
	Passed bool    // Whether the actor has passed this obstacle (for scoring)
}

// NewObstacle creates an obstacle at x with a random gap position.
func NewObstacle(x float64, rng *rand.Rand) Obstacle {
	return Obstacle{
		X:      x,
		GapTop: MinGapTop + rng.Intn(MaxGapTop-MinGapTop+1),
	}
}

// Advance moves the obstacle one tick to the left.
func (o *Obstacle) Advance() {
	o.X -= ObstacleSpeed
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + ObstacleWidth
}

// GapBottom returns the y-coordinate where the lower segment starts.
func (o Obstacle) GapBottom() int {
	return o.GapTop + GapSize
}

// Horizontal returns the obstacle's span on the x axis.
func (o Obstacle) Horizontal() core.Span {
	return core.SpanOf(o.X, ObstacleWidth)
}

// Gap returns the passable span on the y axis.
func (o Obstacle) Gap() core.Span {
	return core.SpanOf(float64(o.GapTop), GapSize)
}

// markPassed flags the obstacle once the actor is strictly past its right
// edge. Returns true only on the call that sets the flag.
func (o *Obstacle) markPassed(actorX float64) bool {
	if o.Passed || actorX <= o.Right() {
		return false
	}
	o.Passed = true
	return true
}

// compactAt is the dead-prefix length at which Course reclaims storage.
const compactAt = 16

// Course is the FIFO sequence of obstacles, oldest first.
// Removal advances a head index; the backing slice is compacted once the
// dead prefix outweighs the live window.
type Course struct {
	items   []Obstacle
	head    int
	retired int // Obstacles removed from the front so far
}

// NewCourse creates the opening course: InitialObstacles obstacles spaced
// SpawnSpacing apart, the first at the right edge of the playfield.
func NewCourse(rng *rand.Rand) Course {
	c := Course{items: make([]Obstacle, 0, 8)}
	for i := 0; i < InitialObstacles; i++ {
		c.Push(NewObstacle(float64(Width+i*SpawnSpacing), rng))
	}
	return c
}

// Len returns the number of live obstacles.
func (c *Course) Len() int {
	return len(c.items) - c.head
}

// Obstacles returns the live window. The slice aliases the course storage
// and is only valid until the next Push or PopFront.
func (c *Course) Obstacles() []Obstacle {
	return c.items[c.head:]
}

// Retired returns how many obstacles have left through the front.
func (c *Course) Retired() int {
	return c.retired
}

// Push appends an obstacle at the tail.
func (c *Course) Push(o Obstacle) {
	c.items = append(c.items, o)
}

// PopFront removes and returns the oldest obstacle.
func (c *Course) PopFront() (Obstacle, bool) {
	if c.Len() == 0 {
		return Obstacle{}, false
	}
	o := c.items[c.head]
	c.head++
	c.retired++

	if c.head >= compactAt && c.head*2 >= len(c.items) {
		n := copy(c.items, c.items[c.head:])
		c.items = c.items[:n]
		c.head = 0
	}
	return o, true
}

// Front returns the oldest live obstacle.
func (c *Course) Front() (Obstacle, bool) {
	if c.Len() == 0 {
		return Obstacle{}, false
	}
	return c.items[c.head], true
}

// Back returns the newest obstacle.
func (c *Course) Back() (Obstacle, bool) {
	if c.Len() == 0 {
		return Obstacle{}, false
	}
	return c.items[len(c.items)-1], true
}

// Advance moves every obstacle left and marks the ones the actor has just
// cleared. Returns the number of obstacles passed this tick.
func (c *Course) Advance(actorX float64) int {
	passed := 0
	live := c.Obstacles()
	for i := range live {
		live[i].Advance()
		if live[i].markPassed(actorX) {
			passed++
		}
	}
	return passed
}

// Maintain spawns a new obstacle at the right edge once the newest one has
// travelled SpawnSpacing, and drops the oldest once it is fully off-screen.
// At most one of each happens per tick.
func (c *Course) Maintain(rng *rand.Rand) (spawned, removed bool) {
	if last, ok := c.Back(); !ok || last.X < Width-SpawnSpacing {
		c.Push(NewObstacle(Width, rng))
		spawned = true
	}

	if first, ok := c.Front(); ok && first.X < -ObstacleWidth {
		c.PopFront()
		removed = true
	}
	return spawned, removed
}

// Clone returns an independent copy of the live obstacles.
func (c *Course) Clone() []Obstacle {
	out := make([]Obstacle, c.Len())
	copy(out, c.Obstacles())
	return out
}
