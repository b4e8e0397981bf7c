package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys reports keyboard state for one tick.
type Keys interface {
	FlapHeld() bool    // A flap key is down right now
	FlapPressed() bool // A flap key went down this tick
	RestartPressed() bool
	QuitPressed() bool
}

var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// ebitenKeys reads the real keyboard through Ebiten.
type ebitenKeys struct{}

func (ebitenKeys) FlapHeld() bool {
	for _, k := range flapKeys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ebitenKeys) FlapPressed() bool    { return anyJustPressed(flapKeys) }
func (ebitenKeys) RestartPressed() bool { return anyJustPressed(restartKeys) }
func (ebitenKeys) QuitPressed() bool    { return anyJustPressed(quitKeys) }

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
