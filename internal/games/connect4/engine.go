package connect4

// directions are the four line orientations checked for a win:
// horizontal, vertical, diagonal down-right and diagonal down-left.
var directions = [4]Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Engine owns a Connect Four board and enforces the rules.
// It is not safe for concurrent use; each game session owns its own engine.
type Engine struct {
	height int
	width  int
	grid   [][]Cell

	active    Player
	phase     Phase
	lastMover Player // zero until the first piece is placed
	moves     int
}

// NewEngine creates an engine with fixed board dimensions.
func NewEngine(height, width int) (*Engine, error) {
	if height < 1 || width < 1 {
		return nil, ErrInvalidDimensions
	}

	e := &Engine{
		height: height,
		width:  width,
	}
	e.grid = make([][]Cell, height)
	for y := range e.grid {
		e.grid[y] = make([]Cell, width)
	}
	e.Reset()
	return e, nil
}

// NewDefaultEngine creates an engine with the standard 6x7 board.
func NewDefaultEngine() *Engine {
	e, _ := NewEngine(DefaultHeight, DefaultWidth)
	return e
}

// Reset clears the board and starts a new game with Player1 to move.
func (e *Engine) Reset() {
	for y := range e.grid {
		for x := range e.grid[y] {
			e.grid[y][x] = Empty
		}
	}
	e.active = Player1
	e.phase = Phase{Kind: InProgress}
	e.lastMover = 0
	e.moves = 0
}

// DropPiece drops the active player's piece into col.
// Rejected moves leave the engine untouched.
func (e *Engine) DropPiece(col int) MoveResult {
	if e.phase.Terminal() {
		return MoveResult{Kind: GameOver, Row: -1, Col: col}
	}
	if col < 0 || col >= e.width {
		return MoveResult{Kind: InvalidColumn, Row: -1, Col: col}
	}

	row := e.findSpot(col)
	if row < 0 {
		return MoveResult{Kind: ColumnFull, Row: -1, Col: col}
	}

	mover := e.active
	e.grid[row][col] = mover.Cell()
	e.lastMover = mover
	e.moves++

	// Win must be evaluated before tie, and both before the turn passes.
	switch {
	case e.CheckWin():
		e.phase = Phase{Kind: Won, Winner: mover}
	case e.CheckTie():
		e.phase = Phase{Kind: Tied}
	default:
		e.active = mover.Other()
	}

	return MoveResult{Kind: Placed, Row: row, Col: col, Player: mover}
}

// findSpot returns the lowest empty row in col, or -1 if the column is full.
func (e *Engine) findSpot(col int) int {
	for y := e.height - 1; y >= 0; y-- {
		if e.grid[y][col] == Empty {
			return y
		}
	}
	return -1
}

// CheckWin reports whether the player who moved last has four in a row.
func (e *Engine) CheckWin() bool {
	return e.WinningLine() != nil
}

// WinningLine returns the first four-in-a-row owned by the last mover,
// scanning every origin in all four directions. Nil if there is none.
func (e *Engine) WinningLine() []Coord {
	if e.lastMover == 0 {
		return nil
	}
	want := e.lastMover.Cell()

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			for _, d := range directions {
				if e.lineOwnedBy(y, x, d, want) {
					line := make([]Coord, WinLength)
					for i := range line {
						line[i] = Coord{Row: y + i*d.Row, Col: x + i*d.Col}
					}
					return line
				}
			}
		}
	}
	return nil
}

// lineOwnedBy reports whether the WinLength cells starting at (y, x) and
// stepping by d are all in bounds and equal to want.
func (e *Engine) lineOwnedBy(y, x int, d Coord, want Cell) bool {
	for i := 0; i < WinLength; i++ {
		r, c := y+i*d.Row, x+i*d.Col
		if r < 0 || r >= e.height || c < 0 || c >= e.width {
			return false
		}
		if e.grid[r][c] != want {
			return false
		}
	}
	return true
}

// CheckTie reports whether every cell is occupied and the last move did not win.
func (e *Engine) CheckTie() bool {
	for y := range e.grid {
		for x := range e.grid[y] {
			if e.grid[y][x] == Empty {
				return false
			}
		}
	}
	return !e.CheckWin()
}

// Cell returns the content of (row, col).
func (e *Engine) Cell(row, col int) (Cell, error) {
	if row < 0 || row >= e.height || col < 0 || col >= e.width {
		return Empty, ErrOutOfBounds
	}
	return e.grid[row][col], nil
}

// Phase returns the current game phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// ActivePlayer returns the player whose move is accepted next.
// After a game ends it stays on the player who made the final move.
func (e *Engine) ActivePlayer() Player {
	return e.active
}

// Height returns the number of rows.
func (e *Engine) Height() int {
	return e.height
}

// Width returns the number of columns.
func (e *Engine) Width() int {
	return e.width
}

// MoveCount returns the number of pieces placed since the last reset.
func (e *Engine) MoveCount() int {
	return e.moves
}

// ColumnHeight returns how many pieces are stacked in col.
// Out-of-range columns report 0.
func (e *Engine) ColumnHeight(col int) int {
	if col < 0 || col >= e.width {
		return 0
	}
	return e.height - 1 - e.findSpot(col)
}

// Playable reports whether a piece could be dropped into col right now.
func (e *Engine) Playable(col int) bool {
	if e.phase.Terminal() || col < 0 || col >= e.width {
		return false
	}
	return e.findSpot(col) >= 0
}

// Board returns a deep copy of the grid, indexed [row][col].
func (e *Engine) Board() [][]Cell {
	board := make([][]Cell, len(e.grid))
	for y := range e.grid {
		board[y] = make([]Cell, len(e.grid[y]))
		copy(board[y], e.grid[y])
	}
	return board
}

// Snapshot is a consistent point-in-time copy of the engine state.
type Snapshot struct {
	Height       int
	Width        int
	Board        [][]Cell
	ActivePlayer Player
	Phase        Phase
	Moves        int
	WinningLine  []Coord
}

// Snapshot returns a copy of the engine state that is safe to keep.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Height:       e.height,
		Width:        e.width,
		Board:        e.Board(),
		ActivePlayer: e.active,
		Phase:        e.phase,
		Moves:        e.moves,
		WinningLine:  e.WinningLine(),
	}
}
