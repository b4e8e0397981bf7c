package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// loadSettings reads the settings file and applies global flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	if flagDBPath != "" {
		settings.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// terminalLogFile is where the terminal frontend logs when no file is set,
// since stderr would draw over the game screen.
const terminalLogFile = "~/.flappy/flappy.log"

// logSettings returns the log settings for the chosen frontend.
func logSettings(s config.Settings) config.LogSettings {
	ls := s.Log
	if ls.File == "" && s.Frontend == config.FrontendTerminal {
		ls.File = terminalLogFile
	}
	return ls
}

// newLogger builds the process logger. The returned closer releases the
// log file, if any.
func newLogger(s config.LogSettings) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if s.File != "" {
		path, err := config.ExpandHome(s.File)
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the score database. Failure is not fatal: the game runs
// without history and the caller gets nil.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}
