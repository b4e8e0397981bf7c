package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings. It matches the embedded
// YAML and is used when that cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Frontend: FrontendTerminal,
		DBPath:   "~/.flappy/scores.db",
		Log: LogSettings{
			Level: "warn",
		},
		Terminal: TerminalSettings{
			HoldMillis:        120,
			RepeatDelayMillis: 700,
			AltScreen:         true,
		},
		Window: WindowSettings{
			Title: "Flappy Bird",
			Scale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
