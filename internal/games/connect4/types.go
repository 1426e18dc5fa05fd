package connect4

// Board dimensions used when no configuration overrides them.
const (
	DefaultHeight = 6
	DefaultWidth  = 7

	// WinLength is the number of contiguous pieces needed to win.
	WinLength = 4
)

// Cell is the content of a single board position.
type Cell uint8

const (
	Empty Cell = iota
	Player1Cell
	Player2Cell
)

// Player identifies one of the two players.
type Player uint8

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Cell returns the cell value a piece of this player occupies.
func (p Player) Cell() Cell {
	return Cell(p)
}

// Other returns the opponent.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// String returns "Player 1" or "Player 2".
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// Owner returns the player holding this cell and false for an empty cell.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case Player1Cell:
		return Player1, true
	case Player2Cell:
		return Player2, true
	default:
		return 0, false
	}
}

// PhaseKind is the terminal/non-terminal status of a game.
type PhaseKind string

const (
	InProgress PhaseKind = "in_progress"
	Won        PhaseKind = "won"
	Tied       PhaseKind = "tied"
)

// Phase is the current game phase. Winner is only set when Kind is Won.
type Phase struct {
	Kind   PhaseKind
	Winner Player
}

// Terminal reports whether no further moves are accepted.
func (p Phase) Terminal() bool {
	return p.Kind == Won || p.Kind == Tied
}

func (p Phase) String() string {
	switch p.Kind {
	case Won:
		return p.Winner.String() + " won"
	case Tied:
		return "tied"
	default:
		return "in progress"
	}
}

// Coord is a (row, column) board position. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// MoveKind classifies the outcome of a DropPiece call.
type MoveKind string

const (
	Placed        MoveKind = "placed"
	ColumnFull    MoveKind = "column_full"
	GameOver      MoveKind = "game_over"
	InvalidColumn MoveKind = "invalid_column"
)

// MoveResult is returned synchronously by DropPiece.
// Row and Col are only meaningful when Kind is Placed.
type MoveResult struct {
	Kind   MoveKind
	Row    int
	Col    int
	Player Player // player who placed the piece
}

// OK reports whether a piece was placed.
func (r MoveResult) OK() bool {
	return r.Kind == Placed
}

// Err maps a rejected move to its sentinel error. Placed moves return nil.
func (r MoveResult) Err() error {
	switch r.Kind {
	case Placed:
		return nil
	case ColumnFull:
		return ErrColumnFull
	case GameOver:
		return ErrGameOver
	case InvalidColumn:
		return ErrInvalidColumn
	default:
		return ErrInvalidColumn
	}
}

// Error is a connect4 sentinel error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "connect4: invalid column"
	ErrColumnFull        Error = "connect4: column is full"
	ErrGameOver          Error = "connect4: game already over"
	ErrOutOfBounds       Error = "connect4: cell out of bounds"
	ErrInvalidDimensions Error = "connect4: invalid board dimensions"
)
