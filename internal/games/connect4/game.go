package connect4

import (
	"fmt"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
)

// PlayerStyle controls how a player's pieces and name are shown.
type PlayerStyle struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Options fixes the board size and player styles of a Game.
type Options struct {
	Height  int
	Width   int
	Players [2]PlayerStyle
}

// DefaultOptions returns a standard 6x7 board with red and yellow pieces.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig converts loaded configuration into game options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Height: cfg.Board.Height,
		Width:  cfg.Board.Width,
		Players: [2]PlayerStyle{
			{Name: cfg.Player1.Name, Glyph: cfg.Player1.GlyphRune(), Color: cfg.Player1.ColorValue()},
			{Name: cfg.Player2.Name, Glyph: cfg.Player2.GlyphRune(), Color: cfg.Player2.ColorValue()},
		},
	}
}

// Game adapts the Engine to the terminal platform: a column cursor,
// key-driven drops, a status line and board rendering.
type Game struct {
	engine  *Engine
	players [2]PlayerStyle

	cursor int
	last   *MoveResult // most recent DropPiece result since reset

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates a game with the given options.
func NewGame(opts Options) (*Game, error) {
	engine, err := NewEngine(opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}

	g := &Game{
		engine:  engine,
		players: opts.Players,
	}
	g.cursor = engine.Width() / 2
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "connect4"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Connect Four"
}

// Engine exposes the underlying engine for read-only queries.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset starts a new game and adapts to the screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine.Reset()
	g.cursor = g.engine.Width() / 2
	g.last = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.minWidth() || h < g.minHeight()
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := false

	switch {
	case in.Has(core.ActionRestart):
		g.engine.Reset()
		g.cursor = g.engine.Width() / 2
		g.last = nil
		changed = true

	case g.tooSmall:
		// Board is not visible; ignore moves.

	case in.Has(core.ActionLeft):
		changed = g.moveCursor(-1)

	case in.Has(core.ActionRight):
		changed = g.moveCursor(1)

	case in.Has(core.ActionColumn):
		if in.Column >= 0 && in.Column < g.engine.Width() && !g.engine.Phase().Terminal() {
			g.cursor = in.Column
		}
		changed = g.drop(in.Column)

	case in.Has(core.ActionDrop):
		changed = g.drop(g.cursor)
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) moveCursor(delta int) bool {
	if g.engine.Phase().Terminal() {
		return false
	}
	next := core.Clamp(g.cursor+delta, 0, g.engine.Width()-1)
	if next == g.cursor {
		return false
	}
	g.cursor = next
	return true
}

func (g *Game) drop(col int) bool {
	res := g.engine.DropPiece(col)
	g.last = &res
	return res.OK()
}

// Cursor returns the column currently targeted by ActionDrop.
func (g *Game) Cursor() int {
	return g.cursor
}

// LastMove returns the most recent move result and false if no drop was
// attempted since the last reset.
func (g *Game) LastMove() (MoveResult, bool) {
	if g.last == nil {
		return MoveResult{}, false
	}
	return *g.last, true
}

// PlayerName returns the configured name of p.
func (g *Game) PlayerName(p Player) string {
	if p != Player1 && p != Player2 {
		return p.String()
	}
	if name := g.players[p-1].Name; name != "" {
		return name
	}
	return p.String()
}

// Status returns a one-line description of what just happened or what
// happens next.
func (g *Game) Status() string {
	phase := g.engine.Phase()
	switch phase.Kind {
	case Won:
		return fmt.Sprintf("%s wins! Press R to play again.", g.PlayerName(phase.Winner))
	case Tied:
		return "It's a tie! Press R to play again."
	}

	turn := fmt.Sprintf("%s's turn", g.PlayerName(g.engine.ActivePlayer()))
	if g.last == nil {
		return turn
	}
	switch g.last.Kind {
	case ColumnFull:
		return fmt.Sprintf("Column %d is full. %s", g.last.Col+1, turn)
	case InvalidColumn:
		return fmt.Sprintf("There is no column %d. %s", g.last.Col+1, turn)
	default:
		return turn
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.engine.Phase().Terminal(),
		Status:   g.Status(),
	}
}
