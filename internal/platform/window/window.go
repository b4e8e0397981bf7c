// Package window runs the game in a desktop window using Ebiten.
package window

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform"
)

// basicfont.Face7x13 glyph metrics.
const (
	glyphW = 7
	glyphH = 13
)

var (
	scoreColor     = color.Black
	gameOverColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	totalColor     = color.Black
	playAgainColor = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// Options configures a window run.
type Options struct {
	Config  core.RuntimeConfig
	Title   string
	Scale   float64 // Window size relative to the playfield
	Sprites Sprites
	Keeper  *platform.ScoreKeeper
	Logger  *log.Logger
	Keys    Keys // Nil reads the real keyboard
}

// App adapts the game to ebiten.Game.
type App struct {
	game    *flappy.Game
	sprites Sprites
	keys    Keys
	keeper  *platform.ScoreKeeper
	logger  *log.Logger
	frame   core.InputFrame
}

// New creates an App and resets the game with opts.Config.
func New(game *flappy.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keeper := opts.Keeper
	if keeper == nil {
		keeper = platform.NewScoreKeeper(nil, logger, game.ID(), 0)
	}
	keys := opts.Keys
	if keys == nil {
		keys = ebitenKeys{}
	}

	game.Reset(opts.Config)

	return &App{
		game:    game,
		sprites: opts.Sprites,
		keys:    keys,
		keeper:  keeper,
		logger:  logger,
		frame:   core.NewInputFrame(),
	}
}

// Update runs one simulation tick.
func (a *App) Update() error {
	if a.keys.QuitPressed() {
		a.logger.Debug("quit requested", "score", a.game.State().Score)
		return ebiten.Termination
	}

	a.frame.Clear()
	if a.game.State().Over() {
		if a.keys.RestartPressed() {
			a.frame.Set(core.ActionRestart)
		}
	} else {
		if a.keys.FlapPressed() {
			a.frame.Set(core.ActionJump)
		}
		if a.keys.FlapHeld() {
			a.frame.Set(core.ActionBoost)
		}
	}

	a.keeper.Observe(a.game.Step(a.frame))
	return nil
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()

	drawScaled(screen, a.sprites.Background, rect{0, 0, flappy.Width, flappy.Height})

	if snap.Over() {
		drawCentered(screen, flappy.GameOverTitle, flappy.Height/3, gameOverColor)
		drawCentered(screen, flappy.TotalScoreText, flappy.Height/2, totalColor)
		drawCentered(screen, strconv.Itoa(snap.Score), flappy.Height*5/9, totalColor)
		drawCentered(screen, flappy.PlayAgainText, flappy.Height*2/3, playAgainColor)
		return
	}

	drawScaled(screen, a.sprites.Bird, actorRect(snap.Actor))
	for _, o := range snap.Obstacles {
		upper, lower := pipeRects(o)
		drawScaled(screen, a.sprites.Pipe, lower)
		drawScaled(screen, a.sprites.Pipe, upper)
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, 10, 10+glyphH, scoreColor)
}

// Layout keeps the logical screen at playfield size; Ebiten scales it to
// the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return flappy.Width, flappy.Height
}

// rect is a destination rectangle in playfield pixels.
type rect struct {
	X, Y, W, H float64
}

func actorRect(a flappy.Actor) rect {
	return rect{a.X, a.Y, flappy.ActorSize, flappy.ActorSize}
}

// pipeRects returns where the pipe sprite is drawn for each half of o.
// Both halves use the full sprite height; the upper one ends at GapTop and
// the lower one starts at the gap bottom.
func pipeRects(o flappy.Obstacle) (upper, lower rect) {
	h := float64(flappy.Height - flappy.GapSize)
	upper = rect{o.X, float64(o.GapTop) - h, flappy.ObstacleWidth, h}
	lower = rect{o.X, float64(o.GapBottom()), flappy.ObstacleWidth, h}
	return upper, lower
}

func drawScaled(dst, img *ebiten.Image, r rect) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, op)
}

// drawCentered draws s centered horizontally with its middle at y.
func drawCentered(dst *ebiten.Image, s string, y int, c color.Color) {
	x := (flappy.Width - len(s)*glyphW) / 2
	text.Draw(dst, s, basicfont.Face7x13, x, y+glyphH/2, c)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *flappy.Game, opts Options) error {
	app := New(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(flappy.Width*scale), int(flappy.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.Config.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
