package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const PlayerCount = 2

type Player struct {
	Index int
	Name  string
	Mark  Mark
}

// Players holds the two session players; index 0 always moves first.
type Players [PlayerCount]Player

// NewPlayers builds the session players from names and symbols given in turn order.
func NewPlayers(names, symbols [PlayerCount]string) (Players, error) {
	var players Players

	for i := range players {
		symbol := strings.TrimSpace(symbols[i])
		if symbol == "" || symbol != symbols[i] {
			return Players{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, symbols[i])
		}

		players[i] = Player{
			Index: i,
			Name:  names[i],
			Mark:  Mark(symbol),
		}
	}

	if players[0].Mark == players[1].Mark {
		return Players{}, fmt.Errorf("%w: both players use %q", apperror.ErrDuplicateMark, players[0].Mark)
	}

	return players, nil
}

// Other returns the index of the player who moves after index.
func Other(index int) int {
	return 1 - index
}
