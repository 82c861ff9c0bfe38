package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type terminal interface {
	ReadLine(ctx context.Context) (string, error)
	Show(text string) error
	Clear() error
}

type renderer interface {
	Board(board *entity.Board) string
	Turn(player entity.Player) string
	InvalidInput() string
	CellOccupied() string
	Win(player entity.Player) string
	Draw() string
}

// transition is the outcome of a single turn.
type transition int

const (
	transitionRejected transition = iota
	transitionNextTurn
	transitionWin
	transitionDraw
)

type GameLoop struct {
	logger   *slog.Logger
	players  entity.Players
	renderer renderer
	terminal terminal
}

func NewGameLoop(logger *slog.Logger, players entity.Players, renderer renderer, terminal terminal) *GameLoop {
	return &GameLoop{
		logger: logger.With("component", "game_loop"),

		players:  players,
		renderer: renderer,
		terminal: terminal,
	}
}

// Run plays rounds until reading input fails. A closed input returns apperror.ErrEndOfInput.
func (that *GameLoop) Run(ctx context.Context) error {
	for {
		if _, err := that.PlayRound(ctx); err != nil {
			return err
		}
	}
}

// PlayRound plays one round from an empty board until a win or a draw.
func (that *GameLoop) PlayRound(ctx context.Context) (*RoundResult, error) {
	round := NewRound()
	log := that.logger.With("round_id", round.ID)
	log.Info("Round started")

	for {
		player := that.players[round.Turn]

		next, err := that.playTurn(ctx, round, player)
		if err != nil {
			return nil, err
		}

		switch next {
		case transitionRejected:
			continue
		case transitionNextTurn:
			round.Turn = entity.Other(round.Turn)
		case transitionWin:
			if err = that.finish(round, that.renderer.Win(player)); err != nil {
				return nil, err
			}

			log.Info("Round finished", "result", tictactoe.ResultWin, "winner", player.Name, "moves", round.Board.MarkCount())
			return that.result(round, tictactoe.ResultWin, &player), nil
		case transitionDraw:
			if err = that.finish(round, that.renderer.Draw()); err != nil {
				return nil, err
			}

			log.Info("Round finished", "result", tictactoe.ResultDraw, "moves", round.Board.MarkCount())
			return that.result(round, tictactoe.ResultDraw, nil), nil
		}
	}
}

// playTurn renders the board, prompts player and applies one move.
func (that *GameLoop) playTurn(ctx context.Context, round *Round, player entity.Player) (transition, error) {
	if err := that.showBoard(round.Board); err != nil {
		return transitionRejected, err
	}

	if err := that.terminal.Show(that.renderer.Turn(player)); err != nil {
		return transitionRejected, err
	}

	move, err := tictactoe.ReadMove(ctx, that.terminal)
	if errors.Is(err, apperror.ErrInvalidInput) {
		that.logger.Debug("Move rejected", "round_id", round.ID, "player", player.Name, "error", err)
		return transitionRejected, that.terminal.Show(that.renderer.InvalidInput())
	}
	if err != nil {
		return transitionRejected, err
	}

	result, err := tictactoe.MakeTurn(round.Board, player.Mark, move)
	if errors.Is(err, apperror.ErrCellOccupied) {
		that.logger.Debug("Move rejected", "round_id", round.ID, "player", player.Name, "error", err)
		return transitionRejected, that.terminal.Show(that.renderer.CellOccupied())
	}
	if err != nil {
		return transitionRejected, fmt.Errorf("could not make turn: %w", err)
	}

	that.logger.Debug("Move accepted", "round_id", round.ID, "player", player.Name, "cell", move.Cell())

	switch result {
	case tictactoe.ResultWin:
		return transitionWin, nil
	case tictactoe.ResultDraw:
		return transitionDraw, nil
	default:
		return transitionNextTurn, nil
	}
}

func (that *GameLoop) showBoard(board *entity.Board) error {
	if err := that.terminal.Clear(); err != nil {
		return err
	}

	return that.terminal.Show(that.renderer.Board(board))
}

func (that *GameLoop) finish(round *Round, message string) error {
	if err := that.showBoard(round.Board); err != nil {
		return err
	}

	return that.terminal.Show(message)
}

func (that *GameLoop) result(round *Round, result tictactoe.Result, winner *entity.Player) *RoundResult {
	return &RoundResult{
		RoundID: round.ID,
		Result:  result,
		Winner:  winner,
		Board:   *round.Board,
		Moves:   round.Board.MarkCount(),
	}
}
