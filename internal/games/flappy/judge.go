package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Verdict is the outcome of one collision evaluation.
type Verdict int

const (
	VerdictClear       Verdict = iota // Round continues
	VerdictOutOfBounds                // Actor left the playfield vertically
	VerdictCollision                  // Actor touched an obstacle segment
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictClear:
		return "clear"
	case VerdictOutOfBounds:
		return "out_of_bounds"
	case VerdictCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Terminal reports whether the verdict ends the round.
func (v Verdict) Terminal() bool {
	return v != VerdictClear
}

// playfield is the vertical range the actor's top edge may occupy.
var playfield = core.Span{Min: 0, Max: Height}

// Judge decides whether the actor is out of bounds or touching an obstacle.
// An obstacle is hit when the actor overlaps its column and is not fully
// inside its gap.
func Judge(a Actor, obstacles []Obstacle) Verdict {
	if a.Y < playfield.Min || a.Y > playfield.Max {
		return VerdictOutOfBounds
	}

	body := a.Vertical()
	column := a.Horizontal()
	for _, o := range obstacles {
		if column.Overlaps(o.Horizontal()) && !body.Within(o.Gap()) {
			return VerdictCollision
		}
	}
	return VerdictClear
}
