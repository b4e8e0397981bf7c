package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFrontend string
	flagAssets   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game.

Controls:
  Space/Up/W - Flap (hold to keep climbing)
  R          - Play again (after game over)
  Ctrl+S     - Screenshot (terminal only)
  Q/Ctrl+C   - Quit (Esc also quits the window)

Examples:
  flappy play
  flappy play --frontend window
  flappy play --frontend window --assets ./assets
  flappy play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend: tui or window (overrides settings)")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with bird.png, background.png and pipe.png")
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagFrontend != "" {
		settings.Frontend = flagFrontend
	}
	if flagAssets != "" {
		settings.Window.AssetsDir = flagAssets
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(logSettings(settings))
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(flappy.ID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flappy.TickRate,
		Seed:     seed,
	}

	store := openStore(settings.DBPath, logger)
	if store != nil {
		defer store.Close()
	}
	keeper := newKeeper(store, logger, game.ID())

	logger.Info("starting", "frontend", settings.Frontend, "seed", seed)

	switch settings.Frontend {
	case config.FrontendWindow:
		return playWindow(game, cfg, settings.Window, keeper, logger)
	default:
		return playTerminal(game, cfg, settings.Terminal, keeper, logger)
	}
}

// newKeeper wires the score keeper to the store, seeding the best score.
func newKeeper(store *storage.Store, logger *log.Logger, gameID string) *platform.ScoreKeeper {
	if store == nil {
		return platform.NewScoreKeeper(nil, logger, gameID, 0)
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}
	return platform.NewScoreKeeper(store, logger, gameID, best)
}

func playTerminal(game registry.Game, cfg core.RuntimeConfig, ts config.TerminalSettings, keeper *platform.ScoreKeeper, logger *log.Logger) error {
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	shotDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		shotDir = filepath.Join(home, ".flappy", "screenshots")
	}

	err := tui.Run(game, tui.Options{
		Config:        cfg,
		HoldWindow:    ts.HoldWindow(),
		RepeatDelay:   ts.RepeatDelay(),
		AltScreen:     ts.AltScreen,
		ScreenshotDir: shotDir,
		Keeper:        keeper,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

func playWindow(game registry.Game, cfg core.RuntimeConfig, ws config.WindowSettings, keeper *platform.ScoreKeeper, logger *log.Logger) error {
	fg, ok := game.(*flappy.Game)
	if !ok {
		return fmt.Errorf("window frontend cannot run %q", game.ID())
	}

	assetsDir := ws.AssetsDir
	if assetsDir != "" {
		dir, err := config.ExpandHome(assetsDir)
		if err != nil {
			return err
		}
		assetsDir = dir
	}
	sprites, err := window.LoadSprites(assetsDir)
	if err != nil {
		return err
	}

	cfg.ScreenW, cfg.ScreenH = flappy.Width, flappy.Height
	return window.Run(fg, window.Options{
		Config:  cfg,
		Title:   ws.Title,
		Scale:   ws.Scale,
		Sprites: sprites,
		Keeper:  keeper,
		Logger:  logger,
	})
}
