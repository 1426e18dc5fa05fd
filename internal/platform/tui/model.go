// Package tui provides the Bubble Tea front-end for Connect Four.
// It maps keys to game actions, renders the game's screen buffer and serves
// sessions over SSH. Game rules live in the game package; this package never
// mutates game state except through Game.Step.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/core"
)

// Game is the contract between the platform and a game implementation.
// Games contain pure logic with no Bubble Tea dependency.
type Game interface {
	// ID returns a unique identifier, used in file names.
	ID() string
	// Title returns a human-readable name for display.
	Title() string
	// Reset starts a new game sized for the given screen.
	Reset(cfg core.RuntimeConfig)
	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)
	// Step applies one input frame.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)
	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game    Game
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	styles  screenStyles
	logger  *log.Logger
	config  core.RuntimeConfig
	over    bool // game over already logged
	quit    bool
	shotDir string
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger used for move and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		if r != nil {
			m.styles = newScreenStyles(r)
		}
	}
}

// WithScreenshotDir enables ctrl+s screenshots into dir.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a model and starts a fresh game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: newScreenStyles(lipgloss.DefaultRenderer()),
		logger: log.New(io.Discard),
		config: cfg,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: m.boardHeight()})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		m.logger.Info("game quit", "status", m.game.State().Status)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	frame := m.keys.MapKey(msg)
	if frame.Empty() {
		return m, nil
	}

	res := m.game.Step(frame)
	m.logger.Debug("input",
		"key", msg.String(),
		"changed", res.Changed,
		"status", res.State.Status,
	)

	switch {
	case res.State.GameOver && !m.over:
		m.logger.Info("game over", "result", res.State.Status)
		m.over = true
	case !res.State.GameOver && m.over:
		m.logger.Info("new game")
		m.over = false
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	return m, nil
}

// layout sizes the screen buffer to the window minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

func (m *Model) boardHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	if m.shotDir == "" {
		return nil
	}
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", m.shotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
