package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Players entity.Players
	Output  *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	players, err := entity.NewPlayers([2]string{"Player1", "Player2"}, [2]string{"o", "×"})
	if err != nil {
		t.Fatalf("could not create players: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Players: players,
		Output:  &bytes.Buffer{},
	}
}

// Console returns a terminal that replays lines as input and writes into Output.
func (that *Suite) Console(lines ...string) *console.Console {
	that.Helper()

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	return console.New(strings.NewReader(input), that.Output, console.ClearNewline)
}
