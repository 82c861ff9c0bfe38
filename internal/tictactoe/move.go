package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// ParseMove maps a single digit '1'-'9' onto board coordinates, row-major from the top-left cell.
func ParseMove(input string) (entity.Move, error) {
	if len(input) != 1 || input[0] < '1' || input[0] > '9' {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, input)
	}

	n := int(input[0] - '1')

	return entity.Move{Row: n / entity.BoardSize, Col: n % entity.BoardSize}, nil
}

// ReadMove reads one line and parses it. A closed input yields apperror.ErrEndOfInput.
func ReadMove(ctx context.Context, reader lineReader) (entity.Move, error) {
	line, err := reader.ReadLine(ctx)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
	}

	return ParseMove(line)
}
