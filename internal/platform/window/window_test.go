package window

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

type fakeKeys struct {
	held, pressed, restart, quit bool
}

func (k *fakeKeys) FlapHeld() bool       { return k.held }
func (k *fakeKeys) FlapPressed() bool    { return k.pressed }
func (k *fakeKeys) RestartPressed() bool { return k.restart }
func (k *fakeKeys) QuitPressed() bool    { return k.quit }

func newTestApp(keys *fakeKeys) (*App, *flappy.Game) {
	g := flappy.New()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	app := New(g, Options{
		Config: cfg,
		Keys:   keys,
		Logger: log.New(io.Discard),
	})
	return app, g
}

func TestAppUpdateFlap(t *testing.T) {
	keys := &fakeKeys{}
	app, g := newTestApp(keys)

	if err := app.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v := g.Snapshot().Actor.Velocity; v != flappy.Gravity {
		t.Errorf("Velocity without input = %v, expected %v", v, flappy.Gravity)
	}

	keys.pressed, keys.held = true, true
	app.Update()
	if v := g.Snapshot().Actor.Velocity; v != -flappy.FlapImpulse*flappy.BoostFactor {
		t.Errorf("Velocity with flap held = %v, expected %v", v, -flappy.FlapImpulse*flappy.BoostFactor)
	}

	keys.pressed, keys.held = false, false
	app.Update()
	if v := g.Snapshot().Actor.Velocity; v != -flappy.FlapImpulse*flappy.BoostFactor+flappy.Gravity {
		t.Errorf("Velocity after release = %v", v)
	}
}

func TestAppRestart(t *testing.T) {
	keys := &fakeKeys{}
	app, g := newTestApp(keys)

	for i := 0; i < 200 && !g.State().Over(); i++ {
		app.Update()
	}
	if !g.State().Over() {
		t.Fatal("Expected the round to end without input")
	}

	// Flap does nothing while over.
	keys.pressed, keys.held = true, true
	app.Update()
	if !g.State().Over() {
		t.Error("Flap should not restart the round")
	}

	keys.pressed, keys.held, keys.restart = false, false, true
	app.Update()
	if g.State().Over() {
		t.Error("R should restart the round")
	}
	if s := g.Snapshot(); s.Score != 0 || len(s.Obstacles) != flappy.InitialObstacles {
		t.Errorf("Fresh round expected, got %+v", s)
	}
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(&fakeKeys{quit: true})
	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update on quit = %v, expected ebiten.Termination", err)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	app, _ := newTestApp(&fakeKeys{})
	w, h := app.Layout(1280, 720)
	if w != flappy.Width || h != flappy.Height {
		t.Errorf("Layout = %dx%d, expected %dx%d", w, h, flappy.Width, flappy.Height)
	}
}

func TestPipeRects(t *testing.T) {
	o := flappy.Obstacle{X: 300, GapTop: 120}
	upper, lower := pipeRects(o)

	if upper.Y+upper.H != 120 {
		t.Errorf("Upper pipe ends at %v, expected 120", upper.Y+upper.H)
	}
	if lower.Y != 270 {
		t.Errorf("Lower pipe starts at %v, expected 270", lower.Y)
	}
	if lower.Y+lower.H < flappy.Height {
		t.Errorf("Lower pipe should reach the bottom, ends at %v", lower.Y+lower.H)
	}
	if upper.Y > 0 {
		t.Errorf("Upper pipe should reach the top, starts at %v", upper.Y)
	}
	if upper.X != 300 || upper.W != flappy.ObstacleWidth {
		t.Errorf("Upper pipe column = %+v", upper)
	}
}

func TestLoadSpritesMissingFile(t *testing.T) {
	_, err := LoadSprites(t.TempDir())
	if err == nil {
		t.Fatal("Expected an error for an empty assets directory")
	}
	if !strings.Contains(err.Error(), BirdFile) {
		t.Errorf("Error should name the missing file, got %v", err)
	}
}
