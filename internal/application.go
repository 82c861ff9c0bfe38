package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/render"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the game on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run plays rounds over in and out until the input is closed.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	players, err := entity.NewPlayers(conf.Players.Names(), conf.Players.Symbols())
	if err != nil {
		return fmt.Errorf("could not create players: %w", err)
	}

	renderer := render.New(players, conf.Screen.Colors)
	terminal := console.New(in, out, console.ClearMode(conf.Screen.Clear))
	gameLoop := usecase.NewGameLoop(logger, players, renderer, terminal)

	log.Info("Starting game", "player1", players[0].Name, "player2", players[1].Name)

	err = gameLoop.Run(ctx)
	if errors.Is(err, apperror.ErrEndOfInput) {
		log.Info("Input closed, shutting down")
		return nil
	}

	return fmt.Errorf("game loop stopped: %w", err)
}
