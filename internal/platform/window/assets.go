package window

import (
	"fmt"
	"image/color"
	_ "image/png" // bird.png, background.png, pipe.png
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Asset file names looked up in the assets directory.
const (
	BirdFile       = "bird.png"
	BackgroundFile = "background.png"
	PipeFile       = "pipe.png"
)

// Fallback sprite colors.
var (
	skyColor  = color.RGBA{0x70, 0xc5, 0xce, 0xff}
	birdColor = color.RGBA{0xf8, 0xd8, 0x20, 0xff}
	pipeColor = color.RGBA{0x5e, 0xa8, 0x2e, 0xff}
)

// Sprites holds the images the window renderer draws. Each image is scaled
// at draw time, so any source size works.
type Sprites struct {
	Bird       *ebiten.Image
	Background *ebiten.Image
	Pipe       *ebiten.Image
}

// LoadSprites reads the three sprite images from dir. An empty dir yields
// generated solid-color sprites; a missing or broken file is an error.
func LoadSprites(dir string) (Sprites, error) {
	if dir == "" {
		return GenerateSprites(), nil
	}

	load := func(name string) (*ebiten.Image, error) {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("window: load %s: %w", name, err)
		}
		return img, nil
	}

	var s Sprites
	var err error
	if s.Bird, err = load(BirdFile); err != nil {
		return Sprites{}, err
	}
	if s.Background, err = load(BackgroundFile); err != nil {
		return Sprites{}, err
	}
	if s.Pipe, err = load(PipeFile); err != nil {
		return Sprites{}, err
	}
	return s, nil
}

// GenerateSprites builds plain colored sprites at their in-game sizes.
func GenerateSprites() Sprites {
	solid := func(w, h int, c color.Color) *ebiten.Image {
		img := ebiten.NewImage(w, h)
		img.Fill(c)
		return img
	}
	return Sprites{
		Bird:       solid(flappy.ActorSize, flappy.ActorSize, birdColor),
		Background: solid(flappy.Width, flappy.Height, skyColor),
		Pipe:       solid(flappy.ObstacleWidth, flappy.Height-flappy.GapSize, pipeColor),
	}
}
