package flappy

import (
	"math/rand"
	"testing"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		name      string
		actor     Actor
		obstacles []Obstacle
		expected  Verdict
	}{
		{
			name:     "start position is clear",
			actor:    NewActor(),
			expected: VerdictClear,
		},
		{
			name:     "above the playfield",
			actor:    Actor{X: 150, Y: -0.5},
			expected: VerdictOutOfBounds,
		},
		{
			name:     "below the playfield",
			actor:    Actor{X: 150, Y: 400.5},
			expected: VerdictOutOfBounds,
		},
		{
			name:     "top edge is inside",
			actor:    Actor{X: 150, Y: 0},
			expected: VerdictClear,
		},
		{
			name:     "bottom edge is inside",
			actor:    Actor{X: 150, Y: 400},
			expected: VerdictClear,
		},
		{
			name:      "hits upper segment",
			actor:     Actor{X: 150, Y: 200},
			obstacles: []Obstacle{{X: 140, GapTop: 220}},
			expected:  VerdictCollision,
		},
		{
			name:      "hits lower segment",
			actor:     Actor{X: 150, Y: 170},
			obstacles: []Obstacle{{X: 140, GapTop: 50}},
			expected:  VerdictCollision,
		},
		{
			name:      "inside the gap",
			actor:     Actor{X: 150, Y: 200},
			obstacles: []Obstacle{{X: 140, GapTop: 180}},
			expected:  VerdictClear,
		},
		{
			name:      "flush with gap edges",
			actor:     Actor{X: 150, Y: 100},
			obstacles: []Obstacle{{X: 140, GapTop: 100}, {X: 140, GapTop: -10}},
			expected:  VerdictClear,
		},
		{
			name:      "obstacle touching actor's right edge",
			actor:     Actor{X: 150, Y: 0},
			obstacles: []Obstacle{{X: 190, GapTop: 200}},
			expected:  VerdictClear,
		},
		{
			name:      "obstacle touching actor's left edge",
			actor:     Actor{X: 150, Y: 0},
			obstacles: []Obstacle{{X: 100, GapTop: 200}},
			expected:  VerdictClear,
		},
		{
			name:      "one pixel of overlap",
			actor:     Actor{X: 150, Y: 0},
			obstacles: []Obstacle{{X: 189, GapTop: 200}},
			expected:  VerdictCollision,
		},
		{
			name:      "offending obstacle last",
			actor:     Actor{X: 150, Y: 200},
			obstacles: []Obstacle{{X: 140, GapTop: 180}, {X: 160, GapTop: 50}},
			expected:  VerdictCollision,
		},
		{
			name:      "offending obstacle first",
			actor:     Actor{X: 150, Y: 200},
			obstacles: []Obstacle{{X: 160, GapTop: 50}, {X: 140, GapTop: 180}},
			expected:  VerdictCollision,
		},
		{
			name:      "bounds checked before obstacles",
			actor:     Actor{X: 150, Y: -1},
			obstacles: []Obstacle{{X: 140, GapTop: 50}},
			expected:  VerdictOutOfBounds,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Judge(tc.actor, tc.obstacles); got != tc.expected {
				t.Errorf("Judge() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestJudgeMatchesRule compares Judge against the written-out rule over
// random positions.
func TestJudgeMatchesRule(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 5000; i++ {
		a := Actor{X: ActorStartX, Y: rng.Float64()*500 - 50}
		obs := make([]Obstacle, rng.Intn(4))
		for j := range obs {
			obs[j] = Obstacle{X: rng.Float64()*400 - 50, GapTop: MinGapTop + rng.Intn(MaxGapTop-MinGapTop+1)}
		}

		over := a.Y < 0 || a.Y > Height
		for _, o := range obs {
			overlap := a.X < o.X+ObstacleWidth && a.X+ActorSize > o.X
			outside := a.Y < float64(o.GapTop) || a.Y+ActorSize > float64(o.GapTop+GapSize)
			if overlap && outside {
				over = true
			}
		}

		if got := Judge(a, obs).Terminal(); got != over {
			t.Fatalf("case %d: Judge(%+v, %+v).Terminal() = %v, rule says %v", i, a, obs, got, over)
		}
	}
}
