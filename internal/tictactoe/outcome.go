package tictactoe

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Result string

const (
	ResultOngoing Result = "ongoing"
	ResultWin     Result = "win"
	ResultDraw    Result = "draw"
)

// Line is one of the eight triples checked for a win.
type Line [entity.BoardSize]entity.Move

var WinCombos = []Line{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// CheckWin reports whether any line is fully held by mark.
func CheckWin(board *entity.Board, mark entity.Mark) bool {
	if mark == entity.EmptyCell {
		return false
	}

	return lo.SomeBy(WinCombos, func(line Line) bool {
		return lo.EveryBy(line[:], func(move entity.Move) bool {
			return board.Get(move.Row, move.Col) == mark
		})
	})
}

// CheckDraw reports whether no empty cell is left. Call CheckWin first: a full board with a line is a win.
func CheckDraw(board *entity.Board) bool {
	return board.IsFull()
}

// Evaluate classifies the board after mark has just moved.
func Evaluate(board *entity.Board, mark entity.Mark) Result {
	switch {
	case CheckWin(board, mark):
		return ResultWin
	case CheckDraw(board):
		return ResultDraw
	default:
		return ResultOngoing
	}
}

// MakeTurn places mark and evaluates the result. The board is unchanged on error.
func MakeTurn(board *entity.Board, mark entity.Mark, move entity.Move) (Result, error) {
	if err := board.Place(move.Row, move.Col, mark); err != nil {
		return ResultOngoing, fmt.Errorf("invalid turn: %w", err)
	}

	return Evaluate(board, mark), nil
}
