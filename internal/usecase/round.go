package usecase

import (
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Round is the state of one playthrough. It is created fresh for every round and owned by the game loop.
type Round struct {
	ID    string
	Board *entity.Board
	Turn  int
}

func NewRound() *Round {
	return &Round{
		ID:    uuid.NewString(),
		Board: entity.NewBoard(),
		Turn:  0,
	}
}

// RoundResult describes how a round ended. Winner is nil on a draw.
type RoundResult struct {
	RoundID string
	Result  tictactoe.Result
	Winner  *entity.Player
	Board   entity.Board
	Moves   int
}
