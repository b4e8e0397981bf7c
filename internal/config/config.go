// Package config provides YAML-based settings loading for the game and its
// frontends. Gameplay constants are fixed in the game package; settings only
// cover how the game is hosted.
package config

import (
	"fmt"
	"time"
)

// Frontend names accepted in settings and on the command line.
const (
	FrontendTerminal = "tui"
	FrontendWindow   = "window"
)

// Settings contains everything configurable about a run.
type Settings struct {
	Frontend string           `yaml:"frontend"`
	DBPath   string           `yaml:"db_path"`
	Log      LogSettings      `yaml:"log"`
	Terminal TerminalSettings `yaml:"terminal"`
	Window   WindowSettings   `yaml:"window"`
}

// LogSettings defines where and how verbosely the game logs.
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr
}

// TerminalSettings defines terminal frontend parameters.
type TerminalSettings struct {
	// HoldMillis is how long after the last key event the flap key still
	// counts as held. Terminals only report key repeats, never releases.
	HoldMillis int `yaml:"hold_ms"`
	// RepeatDelayMillis is the longest the terminal may take to send the
	// first auto-repeat. A press arriving sooner continues the same hold
	// instead of starting a new flap.
	RepeatDelayMillis int  `yaml:"repeat_delay_ms"`
	AltScreen         bool `yaml:"alt_screen"`
}

// WindowSettings defines window frontend parameters.
type WindowSettings struct {
	Title     string  `yaml:"title"`
	Scale     float64 `yaml:"scale"`      // Window size relative to the playfield
	AssetsDir string  `yaml:"assets_dir"` // Directory with bird.png, background.png, pipe.png
}

// HoldWindow returns the terminal hold window as a duration.
func (t TerminalSettings) HoldWindow() time.Duration {
	return time.Duration(t.HoldMillis) * time.Millisecond
}

// RepeatDelay returns the first-repeat allowance as a duration.
func (t TerminalSettings) RepeatDelay() time.Duration {
	return time.Duration(t.RepeatDelayMillis) * time.Millisecond
}

// Validate checks settings for values the frontends cannot use.
func (s Settings) Validate() error {
	switch s.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("config: unknown frontend %q (want %q or %q)", s.Frontend, FrontendTerminal, FrontendWindow)
	}

	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", s.Log.Level)
	}

	if s.Terminal.HoldMillis <= 0 {
		return fmt.Errorf("config: terminal.hold_ms must be positive, got %d", s.Terminal.HoldMillis)
	}
	if s.Terminal.RepeatDelayMillis < 0 {
		return fmt.Errorf("config: terminal.repeat_delay_ms must not be negative, got %d", s.Terminal.RepeatDelayMillis)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("config: window.scale must be positive, got %g", s.Window.Scale)
	}
	return nil
}
