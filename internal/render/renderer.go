// Package render draws the board and game messages as fixed-layout text.
package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	InvalidInputMessage = "invalid input; enter a digit 1–9 corresponding to a cell"
	CellOccupiedMessage = "cell already occupied"
	DrawMessage         = "Draw"

	rowSeparator = "---+---+---\t---+---+---\n"
	emptyCell    = " "
)

var markStyles = [entity.PlayerCount]color.Style{
	color.New(color.FgCyan, color.OpBold),
	color.New(color.FgMagenta, color.OpBold),
}

// Renderer has no state beyond the session players, so every method is safe to call at any time.
type Renderer struct {
	styles map[entity.Mark]color.Style
}

// New returns a renderer. With colors enabled, each player's mark gets its own style.
func New(players entity.Players, colors bool) *Renderer {
	styles := make(map[entity.Mark]color.Style, len(players))
	if colors {
		for _, player := range players {
			styles[player.Mark] = markStyles[player.Index]
		}
	}

	return &Renderer{styles: styles}
}

// Board draws the grid next to a reference grid of cell numbers.
func (that *Renderer) Board(board *entity.Board) string {
	var sb strings.Builder

	for row := range entity.BoardSize {
		first := row*entity.BoardSize + 1
		fmt.Fprintf(&sb, " %s | %s | %s\t %d | %d | %d\n",
			that.cell(board.Get(row, 0)), that.cell(board.Get(row, 1)), that.cell(board.Get(row, 2)),
			first, first+1, first+2)

		if row != entity.BoardSize-1 {
			sb.WriteString(rowSeparator)
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

// Turn is the prompt shown before reading a move.
func (that *Renderer) Turn(player entity.Player) string {
	return fmt.Sprintf("%s's turn (symbol: %s)\nEnter a digit 1-9 for the cell: ", player.Name, that.cell(player.Mark))
}

func (that *Renderer) InvalidInput() string {
	return "\n" + InvalidInputMessage + "\n"
}

func (that *Renderer) CellOccupied() string {
	return "\n" + CellOccupiedMessage + "\n"
}

func (that *Renderer) Win(player entity.Player) string {
	return fmt.Sprintf("%s (symbol: %s) wins!\n", player.Name, that.cell(player.Mark))
}

func (that *Renderer) Draw() string {
	return DrawMessage + "\n"
}

func (that *Renderer) cell(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return emptyCell
	}

	if style, ok := that.styles[mark]; ok {
		return style.Render(string(mark))
	}

	return string(mark)
}
