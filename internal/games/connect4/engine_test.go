package connect4

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawSequence fills a 6x7 board without ever forming four in a row.
var drawSequence = []int{
	3, 4, 4, 6, 0, 3, 5, 2, 6, 5, 0, 6, 5, 0, 3, 6, 5, 6, 1, 3, 1,
	3, 6, 5, 2, 0, 5, 3, 4, 4, 0, 1, 1, 1, 0, 1, 4, 2, 4, 2, 2, 2,
}

// lastMoveWinsSequence fills a 6x7 board; the 42nd move (Player2, column 0)
// completes a horizontal four across the top row.
var lastMoveWinsSequence = []int{
	3, 1, 1, 1, 4, 3, 6, 3, 2, 5, 2, 6, 4, 0, 6, 6, 2, 0, 6, 4, 5,
	6, 1, 2, 4, 4, 4, 1, 5, 2, 3, 1, 3, 2, 0, 5, 5, 3, 0, 0, 5, 0,
}

func play(t *testing.T, e *Engine, cols ...int) MoveResult {
	t.Helper()
	var res MoveResult
	for i, col := range cols {
		res = e.DropPiece(col)
		require.Truef(t, res.OK(), "move %d (column %d) rejected: %s", i, col, res.Kind)
	}
	return res
}

// assertGravity fails if any piece sits above an empty cell.
func assertGravity(t *testing.T, e *Engine) {
	t.Helper()
	board := e.Board()
	for y := 0; y < e.Height()-1; y++ {
		for x := 0; x < e.Width(); x++ {
			if board[y][x] != Empty && board[y+1][x] == Empty {
				t.Fatalf("floating piece at (%d, %d)", y, x)
			}
		}
	}
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(6, 7)
	require.NoError(t, err)

	assert.Equal(t, 6, e.Height())
	assert.Equal(t, 7, e.Width())
	assert.Equal(t, Player1, e.ActivePlayer())
	assert.Equal(t, Phase{Kind: InProgress}, e.Phase())
	assert.Zero(t, e.MoveCount())

	for y := 0; y < 6; y++ {
		for x := 0; x < 7; x++ {
			c, err := e.Cell(y, x)
			require.NoError(t, err)
			assert.Equal(t, Empty, c)
		}
	}
}

func TestNewEngineInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 7},
		{"zero width", 6, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.height, tt.width)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestDropPieceFallsToBottom(t *testing.T) {
	e := NewDefaultEngine()

	res := e.DropPiece(3)
	assert.Equal(t, MoveResult{Kind: Placed, Row: 5, Col: 3, Player: Player1}, res)

	res = e.DropPiece(3)
	assert.Equal(t, MoveResult{Kind: Placed, Row: 4, Col: 3, Player: Player2}, res)

	c, err := e.Cell(5, 3)
	require.NoError(t, err)
	assert.Equal(t, Player1Cell, c)

	c, err = e.Cell(4, 3)
	require.NoError(t, err)
	assert.Equal(t, Player2Cell, c)

	assert.Equal(t, 2, e.ColumnHeight(3))
	assert.Equal(t, 2, e.MoveCount())
}

func TestTurnAlternation(t *testing.T) {
	e := NewDefaultEngine()

	// Spread pieces so nobody wins: columns 0..6 twice, bottom two rows.
	expected := Player1
	for i := 0; i < 14; i++ {
		require.Equal(t, expected, e.ActivePlayer(), "before move %d", i)
		res := e.DropPiece(i % 7)
		require.True(t, res.OK())
		assert.Equal(t, expected, res.Player)
		expected = expected.Other()
	}
	assert.Equal(t, InProgress, e.Phase().Kind)
}

func TestGravityInvariant(t *testing.T) {
	e := NewDefaultEngine()
	for _, col := range drawSequence {
		e.DropPiece(col)
		assertGravity(t, e)
	}
}

func TestVerticalWin(t *testing.T) {
	// Scenario A: Player1 stacks column 0, Player2 answers in column 1.
	e := NewDefaultEngine()
	res := play(t, e, 0, 1, 0, 1, 0, 1, 0)

	assert.Equal(t, Coord{Row: 2, Col: 0}, Coord{Row: res.Row, Col: res.Col})
	assert.True(t, e.CheckWin())
	assert.Equal(t, Phase{Kind: Won, Winner: Player1}, e.Phase())
	assert.Equal(t, Player1, e.ActivePlayer(), "turn must not pass after a win")
	assert.Equal(t, []Coord{{2, 0}, {3, 0}, {4, 0}, {5, 0}}, e.WinningLine())
}

func TestWinDirections(t *testing.T) {
	tests := []struct {
		name   string
		moves  []int
		winner Player
		line   []Coord
	}{
		{
			name:   "horizontal",
			moves:  []int{0, 0, 1, 1, 2, 2, 3},
			winner: Player1,
			line:   []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}},
		},
		{
			name:   "vertical player two",
			moves:  []int{0, 1, 2, 1, 2, 1, 2, 1},
			winner: Player2,
			line:   []Coord{{2, 1}, {3, 1}, {4, 1}, {5, 1}},
		},
		{
			name: "diagonal down-right",
			// Player1 ends on (2,0) (3,1) (4,2) (5,3).
			moves:  []int{3, 2, 2, 1, 1, 0, 1, 0, 0, 6, 0},
			winner: Player1,
			line:   []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
		},
		{
			name: "diagonal down-left",
			// Player1 ends on (2,6) (3,5) (4,4) (5,3).
			moves:  []int{3, 4, 4, 5, 5, 6, 5, 6, 6, 0, 6},
			winner: Player1,
			line:   []Coord{{2, 6}, {3, 5}, {4, 4}, {5, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewDefaultEngine()
			for i, col := range tt.moves {
				require.Equal(t, InProgress, e.Phase().Kind, "game ended early at move %d", i)
				require.True(t, e.DropPiece(col).OK())
			}
			assert.Equal(t, Phase{Kind: Won, Winner: tt.winner}, e.Phase())
			assert.Equal(t, tt.line, e.WinningLine())
		})
	}
}

func TestCheckWinUsesLastMover(t *testing.T) {
	e := NewDefaultEngine()
	assert.False(t, e.CheckWin(), "empty board")

	// Player1 has three in a row; Player2 just moved elsewhere.
	play(t, e, 0, 6, 1, 6, 2, 5)
	assert.False(t, e.CheckWin())
	assert.Equal(t, Player1, e.ActivePlayer())
}

func TestTie(t *testing.T) {
	// Scenario B
	e := NewDefaultEngine()
	for i, col := range drawSequence {
		require.Equal(t, InProgress, e.Phase().Kind, "game ended early at move %d", i)
		require.True(t, e.DropPiece(col).OK())
	}

	assert.Equal(t, Phase{Kind: Tied}, e.Phase())
	assert.True(t, e.CheckTie())
	assert.False(t, e.CheckWin())
	assert.Nil(t, e.WinningLine())
	assert.Equal(t, 42, e.MoveCount())

	res := e.DropPiece(0)
	assert.Equal(t, GameOver, res.Kind)
}

func TestTieChecksWholeBoard(t *testing.T) {
	e := NewDefaultEngine()
	// Everything but the top cell of column 2.
	for _, col := range drawSequence[:len(drawSequence)-1] {
		e.DropPiece(col)
	}
	assert.Equal(t, InProgress, e.Phase().Kind)
	assert.False(t, e.CheckTie())

	e.Reset()
	play(t, e, 0, 1, 2, 3, 4, 5, 6)
	assert.False(t, e.CheckTie(), "full bottom row is not a tie")
}

func TestWinTakesPrecedenceOverTie(t *testing.T) {
	e := NewDefaultEngine()
	for i, col := range lastMoveWinsSequence {
		require.Equal(t, InProgress, e.Phase().Kind, "game ended early at move %d", i)
		require.True(t, e.DropPiece(col).OK())
	}

	assert.Equal(t, 42, e.MoveCount())
	assert.Equal(t, Phase{Kind: Won, Winner: Player2}, e.Phase())
	assert.False(t, e.CheckTie())
}

func TestColumnFull(t *testing.T) {
	// Scenario C
	e := NewDefaultEngine()
	play(t, e, 0, 0, 0, 0, 0, 0)

	before := e.Snapshot()
	res := e.DropPiece(0)

	assert.Equal(t, ColumnFull, res.Kind)
	assert.ErrorIs(t, res.Err(), ErrColumnFull)
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, InProgress, e.Phase().Kind)
	assert.False(t, e.Playable(0))
	assert.True(t, e.Playable(1))
}

func TestInvalidColumn(t *testing.T) {
	// Scenario D
	for _, col := range []int{7, -1, 100} {
		e := NewDefaultEngine()
		before := e.Snapshot()

		res := e.DropPiece(col)

		assert.Equal(t, InvalidColumn, res.Kind)
		assert.True(t, errors.Is(res.Err(), ErrInvalidColumn))
		assert.Equal(t, before, e.Snapshot())
	}
}

func TestGameAlreadyOver(t *testing.T) {
	// Scenario E
	e := NewDefaultEngine()
	play(t, e, 0, 1, 0, 1, 0, 1, 0)
	require.Equal(t, Won, e.Phase().Kind)

	before := e.Snapshot()
	for _, col := range []int{2, 0, 9} {
		res := e.DropPiece(col)
		assert.Equal(t, GameOver, res.Kind)
		assert.ErrorIs(t, res.Err(), ErrGameOver)
		assert.Equal(t, before, e.Snapshot())
	}
	assert.False(t, e.Playable(2))

	e.Reset()
	assert.Equal(t, Phase{Kind: InProgress}, e.Phase())
	assert.True(t, e.DropPiece(2).OK())
}

func TestResetIdempotent(t *testing.T) {
	fresh := NewDefaultEngine().Snapshot()

	tests := []struct {
		name  string
		moves []int
	}{
		{"fresh", nil},
		{"mid game", []int{3, 3, 4}},
		{"after win", []int{0, 1, 0, 1, 0, 1, 0}},
		{"after tie", drawSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewDefaultEngine()
			for _, col := range tt.moves {
				e.DropPiece(col)
			}
			e.Reset()
			assert.Equal(t, fresh, e.Snapshot())
			e.Reset()
			assert.Equal(t, fresh, e.Snapshot())
		})
	}
}

func TestCellOutOfBounds(t *testing.T) {
	e := NewDefaultEngine()
	for _, pos := range []Coord{{-1, 0}, {0, -1}, {6, 0}, {0, 7}} {
		_, err := e.Cell(pos.Row, pos.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, "cell %v", pos)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := NewDefaultEngine()
	e.DropPiece(0)

	snap := e.Snapshot()
	snap.Board[5][0] = Player2Cell

	c, err := e.Cell(5, 0)
	require.NoError(t, err)
	assert.Equal(t, Player1Cell, c)
}

func TestSmallBoard(t *testing.T) {
	// A board too small for four in a row can only tie.
	e, err := NewEngine(2, 2)
	require.NoError(t, err)

	play(t, e, 0, 1, 0)
	res := e.DropPiece(1)
	require.True(t, res.OK())
	assert.Equal(t, Phase{Kind: Tied}, e.Phase())
}

func TestMoveResultErr(t *testing.T) {
	assert.NoError(t, MoveResult{Kind: Placed}.Err())
	assert.Equal(t, "connect4: column is full", MoveResult{Kind: ColumnFull}.Err().Error())
}
