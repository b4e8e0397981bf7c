package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Options configures a terminal run.
type Options struct {
	Config        core.RuntimeConfig
	HoldWindow    time.Duration
	RepeatDelay   time.Duration
	AltScreen     bool
	ScreenshotDir string // Empty disables screenshots
	Keeper        *platform.ScoreKeeper
	Logger        *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	keeper     *platform.ScoreKeeper
	logger     *log.Logger
	config     core.RuntimeConfig
	shotDir    string
	keys       KeyMap
	help       help.Model
	hold       HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keeper := opts.Keeper
	if keeper == nil {
		keeper = platform.NewScoreKeeper(nil, logger, game.ID(), 0)
	}

	game.Reset(opts.Config)

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Config.ScreenW, playHeight(opts.Config.ScreenH)),
		keeper:     keeper,
		logger:     logger,
		config:     opts.Config,
		shotDir:    opts.ScreenshotDir,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       NewHoldTracker(opts.HoldWindow, opts.RepeatDelay),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.nextTick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Classify(msg) {
	case KeyQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit

	case KeyScreenshot:
		m.saveScreenshot()

	case KeyFlap:
		if m.hold.Press(m.now()) {
			m.inputFrame.Set(core.ActionJump)
		}

	case KeyRestart:
		if m.gameState.Over() {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled to
// the terminal, so the round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.Held(now) {
		m.inputFrame.Set(core.ActionBoost)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.keeper.Observe(result)

	if result.Ended {
		// A flap held through the crash must not carry into the next round.
		m.hold.Release()
	}

	m.inputFrame.Clear()
	return m, m.nextTick()
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := fmt.Sprintf("best %d  ", m.keeper.Best())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status+m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, progOpts...)
	_, err := p.Run()
	return err
}
