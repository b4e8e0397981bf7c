package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func withFlags(t *testing.T, cfgPath, db, level string) {
	t.Helper()
	flagConfig, flagDBPath, flagLogLevel, flagLogFile = cfgPath, db, level, ""
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagLogLevel, flagLogFile = "", "", "", ""
	})
}

func TestLoadSettingsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("frontend: window\nlog:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	db := filepath.Join(dir, "scores.db")
	withFlags(t, path, db, "debug")

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Frontend != config.FrontendWindow {
		t.Errorf("Frontend = %q, expected window from file", s.Frontend)
	}
	if s.DBPath != db {
		t.Errorf("DBPath = %q, expected flag value %q", s.DBPath, db)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected flag value debug", s.Log.Level)
	}
}

func TestLoadSettingsRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("frontend: tui\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	withFlags(t, path, "", "loud")

	if _, err := loadSettings(); err == nil {
		t.Error("Expected an error for an unknown log level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")

	logger, closer, err := newLogger(config.LogSettings{Level: "info", File: path})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("Level = %v, expected info", logger.GetLevel())
	}

	logger.Debug("hidden")
	logger.Info("round over", "score", 7)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "round over") || !strings.Contains(out, "score=7") {
		t.Errorf("Log file missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("Debug entry should be filtered at info level")
	}
}

func TestLogSettingsDefaultsFileForTerminal(t *testing.T) {
	tests := []struct {
		name     string
		frontend string
		file     string
		want     string
	}{
		{"terminal without file", config.FrontendTerminal, "", terminalLogFile},
		{"terminal with file", config.FrontendTerminal, "/tmp/game.log", "/tmp/game.log"},
		{"window without file", config.FrontendWindow, "", ""},
		{"window with file", config.FrontendWindow, "/tmp/game.log", "/tmp/game.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			s.Frontend = tt.frontend
			s.Log.File = tt.file

			got := logSettings(s)
			if got.File != tt.want {
				t.Errorf("File = %q, expected %q", got.File, tt.want)
			}
			if got.Level != s.Log.Level {
				t.Errorf("Level = %q, expected %q kept", got.Level, s.Log.Level)
			}
			if s.Log.File != tt.file {
				t.Error("logSettings should not modify the settings it was given")
			}
		})
	}
}
