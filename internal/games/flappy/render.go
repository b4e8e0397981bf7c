package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ActorChar     = '●'
	ActorEyeChar  = '▶'
	ObstacleChar  = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
)

// Game-over panel text.
const (
	GameOverTitle  = "Game Over"
	TotalScoreText = "Your total score is:"
	PlayAgainText  = "Press 'R' to play again"
)

// viewport maps world pixels onto screen cells.
type viewport struct {
	w, h float64 // Screen size in cells
}

func newViewport(dst *core.Screen) viewport {
	return viewport{w: float64(dst.Width()), h: float64(dst.Height())}
}

// col and row clamp to one cell past each edge, so off-screen entities
// keep their visible part and never produce huge coordinates.
func (v viewport) col(x float64) int {
	return int(math.Floor(core.ClampF(x*v.w/Width, -1, v.w)))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(core.ClampF(y*v.h/Height, -1, v.h)))
}

// rect converts a world rectangle to cells, never thinner than one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1, y1 := v.col(x+w), v.row(y+h)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to fit the screen.
// While playing it draws obstacles, the actor and the score; after game
// over it draws only the result panel.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if snap.Over() {
		drawGameOver(dst, snap.Score)
		return
	}

	vp := newViewport(dst)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o)
	}
	drawActor(dst, vp, snap.Actor)

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
}

// drawObstacle renders the upper and lower segments of one obstacle.
func drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	upper := vp.rect(o.X, 0, ObstacleWidth, float64(o.GapTop))
	dst.DrawRect(upper, ObstacleChar, core.ColorGreen)
	dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, CapTopChar, core.ColorBrightGreen)

	lowerY := float64(o.GapBottom())
	lower := vp.rect(o.X, lowerY, ObstacleWidth, Height-lowerY)
	dst.DrawRect(lower, ObstacleChar, core.ColorGreen)
	dst.DrawHLine(lower.X, lower.Y, lower.W, CapBottomChar, core.ColorBrightGreen)
}

func drawActor(dst *core.Screen, vp viewport, a Actor) {
	body := vp.rect(a.X, a.Y, ActorSize, ActorSize)
	dst.DrawRect(body, ActorChar, core.ColorBrightYellow)
	dst.SetColor(body.Right()-1, body.Y, ActorEyeChar, core.ColorBrightYellow)
}

// drawGameOver draws the result panel in the center of the screen.
func drawGameOver(dst *core.Screen, score int) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{GameOverTitle, core.ColorBrightRed},
		{"", core.ColorDefault},
		{TotalScoreText, core.ColorWhite},
		{fmt.Sprintf("%d", score), core.ColorBrightYellow},
		{"", core.ColorDefault},
		{PlayAgainText, core.ColorCyan},
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l.text))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}
