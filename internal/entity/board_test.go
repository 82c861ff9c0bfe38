package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: every cell is empty
	for _, move := range AllMoves {
		assert.Equal(t, EmptyCell, board.Get(move.Row, move.Col))
	}
	assert.Len(t, board.EmptyCells(), CellCount)
	assert.False(t, board.IsFull())
	assert.Zero(t, board.MarkCount())
}

func TestBoard_Initialize(t *testing.T) {
	// Given: a board with some marks
	board := NewBoard()
	require.NoError(t, board.Place(0, 0, "o"))
	require.NoError(t, board.Place(2, 1, "×"))

	// When: the board is initialized again
	board.Initialize()

	// Then: it is empty
	assert.Equal(t, *NewBoard(), *board)
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark into an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: a mark is placed in the center
		err := board.Place(1, 1, "o")

		// Then: the cell holds the mark and one move is counted
		require.NoError(t, err)
		assert.Equal(t, Mark("o"), board.Get(1, 1))
		assert.Equal(t, 1, board.MarkCount())
	})

	t.Run("Rejects an occupied cell and keeps the board", func(t *testing.T) {
		// Given: a board with the top-left cell taken
		board := NewBoard()
		require.NoError(t, board.Place(0, 0, "o"))
		before := *board

		// When: the other player tries the same cell
		err := board.Place(0, 0, "×")

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *board)
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		board := NewBoard()

		err := board.Place(0, 0, EmptyCell)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Zero(t, board.MarkCount())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a board filled except for the last cell
	board := NewBoard()
	marks := []Mark{"o", "×", "o", "o", "×", "×", "×", "o"}
	for i, mark := range marks {
		require.NoError(t, board.Place(AllMoves[i].Row, AllMoves[i].Col, mark))
	}

	// Then: it is not full and only the bottom-right cell is free
	assert.False(t, board.IsFull())
	assert.Equal(t, []Move{{Row: 2, Col: 2}}, board.EmptyCells())

	// When: the last cell is filled
	require.NoError(t, board.Place(2, 2, "o"))

	// Then: the board is full
	assert.True(t, board.IsFull())
	assert.Equal(t, CellCount, board.MarkCount())
}

func TestMove_Cell(t *testing.T) {
	for i, move := range AllMoves {
		assert.Equal(t, i+1, move.Cell())
	}
	assert.Equal(t, Move{Row: 0, Col: 0}, AllMoves[0])
	assert.Equal(t, Move{Row: 2, Col: 2}, AllMoves[CellCount-1])
}
