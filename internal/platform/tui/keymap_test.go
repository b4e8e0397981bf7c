package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapClassify(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyKind
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, KeyFlap},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, KeyRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, KeyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, KeyOther},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Classify(tt.msg); got != tt.want {
				t.Errorf("Classify(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
