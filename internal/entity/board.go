package entity

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	EmptyCell Mark = ""
)

// Mark is the symbol a player claims cells with. EmptyCell marks an unclaimed cell.
type Mark string

// Move addresses one cell by zero-based row and column.
type Move struct {
	Row int
	Col int
}

// Cell returns the keypad number (1-9) of the move, row-major.
func (that Move) Cell() int {
	return that.Row*BoardSize + that.Col + 1
}

// AllMoves lists every cell of the board in row-major order.
var AllMoves = func() []Move {
	moves := make([]Move, 0, CellCount)
	for row := range BoardSize {
		for col := range BoardSize {
			moves = append(moves, Move{Row: row, Col: col})
		}
	}
	return moves
}()

// Board is the 3x3 grid of a single round. Cells only change through Place.
type Board [BoardSize][BoardSize]Mark

func NewBoard() *Board {
	board := &Board{}
	board.Initialize()

	return board
}

// Initialize sets every cell to EmptyCell.
func (that *Board) Initialize() {
	for row := range that {
		for col := range that[row] {
			that[row][col] = EmptyCell
		}
	}
}

// Get returns the mark at row, col; EmptyCell when unclaimed.
func (that *Board) Get(row, col int) Mark {
	return that[row][col]
}

// Place puts mark into an empty cell. Coordinates are expected to be in range.
func (that *Board) Place(row, col int, mark Mark) error {
	if mark == EmptyCell {
		return fmt.Errorf("%w: empty mark", apperror.ErrInvalidMark)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, Move{Row: row, Col: col}.Cell())
	}

	that[row][col] = mark

	return nil
}

// EmptyCells lists the unclaimed cells in row-major order.
func (that *Board) EmptyCells() []Move {
	return lo.Filter(AllMoves, func(move Move, _ int) bool {
		return that.Get(move.Row, move.Col) == EmptyCell
	})
}

// IsFull reports whether no cell is empty.
func (that *Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// MarkCount returns the number of non-empty cells, which equals the number of moves played.
func (that *Board) MarkCount() int {
	return CellCount - len(that.EmptyCells())
}
