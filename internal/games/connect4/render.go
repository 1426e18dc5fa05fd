package connect4

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/connect4/internal/core"
)

// Layout constants. Each board column is three characters wide.
const (
	cellWidth = 3
	headerH   = 3 // title, status, blank line
	// cursor row, box top, box bottom, column numbers
	chromeH = headerH + 4
)

const (
	emptyGlyph  = '·'
	cursorGlyph = '▼'
)

func (g *Game) boardWidth() int {
	return g.engine.Width()*cellWidth + 2
}

func (g *Game) minWidth() int {
	return g.boardWidth()
}

func (g *Game) minHeight() int {
	return g.engine.Height() + chromeH
}

// Render draws the board into dst. The screen is pre-cleared by the caller.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(0, g.Title(), core.ColorCyan)
	dst.DrawTextCentered(1, g.Status(), g.statusColor())

	boardX := (dst.Width() - g.boardWidth()) / 2
	top := headerH

	// Cursor marker above the selected column
	if !g.engine.Phase().Terminal() {
		style := g.style(g.engine.ActivePlayer())
		dst.SetColor(boardX+1+g.cursor*cellWidth+1, top, cursorGlyph, style.Color)
	}

	h := g.engine.Height()
	dst.DrawBox(core.NewRect(boardX, top+1, g.boardWidth(), h+2), core.ColorBlue)

	winning := make(map[Coord]bool, WinLength)
	for _, c := range g.engine.WinningLine() {
		winning[c] = true
	}

	for row := 0; row < h; row++ {
		y := top + 2 + row
		for col := 0; col < g.engine.Width(); col++ {
			x := boardX + 1 + col*cellWidth
			cell, _ := g.engine.Cell(row, col)
			g.renderCell(dst, x, y, cell, winning[Coord{Row: row, Col: col}])
		}
	}

	// Column numbers under the board
	numY := top + h + 3
	for col := 0; col < g.engine.Width(); col++ {
		label := strconv.Itoa(col + 1)
		x := boardX + 1 + col*cellWidth + (cellWidth-len(label))/2
		color := core.ColorGray
		if col == g.cursor && !g.engine.Phase().Terminal() {
			color = core.ColorWhite
		}
		dst.DrawTextColor(x, numY, label, color)
	}
}

func (g *Game) renderCell(dst *core.Screen, x, y int, cell Cell, highlight bool) {
	owner, ok := cell.Owner()
	if !ok {
		dst.SetColor(x+1, y, emptyGlyph, core.ColorGray)
		return
	}

	style := g.style(owner)
	dst.SetColor(x+1, y, style.Glyph, style.Color)
	if highlight {
		dst.SetColor(x, y, '[', core.ColorWhite)
		dst.SetColor(x+2, y, ']', core.ColorWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()), core.ColorGray)
}

func (g *Game) style(p Player) PlayerStyle {
	s := PlayerStyle{Glyph: 'X', Color: core.ColorDefault}
	if p == Player2 {
		s.Glyph = 'O'
	}
	if p == Player1 || p == Player2 {
		cfg := g.players[p-1]
		if cfg.Glyph != 0 {
			s.Glyph = cfg.Glyph
		}
		s.Color = cfg.Color
		s.Name = g.PlayerName(p)
	}
	return s
}

func (g *Game) statusColor() core.Color {
	phase := g.engine.Phase()
	switch phase.Kind {
	case Won:
		return g.style(phase.Winner).Color
	case Tied:
		return core.ColorYellow
	}
	if g.last != nil && !g.last.OK() {
		return core.ColorRed
	}
	return g.style(g.engine.ActivePlayer()).Color
}
