package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()

	conf, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	return conf
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Closed input ends the game without error", func(t *testing.T) {
		// Given: a win for Player1 followed by the end of input
		out := &bytes.Buffer{}

		// When: the game runs
		err := Run(context.Background(), logger, loadConfig(t), strings.NewReader("1\n4\n2\n5\n3\n"), out)

		// Then: it returns nil and the win was announced
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Player1 (symbol: o) wins!\n")
	})

	t.Run("Oversized input does not stop the game", func(t *testing.T) {
		// Given: a 70000 character line before a win and the end of input
		out := &bytes.Buffer{}
		input := strings.Repeat("7", 70000) + "\n1\n4\n2\n5\n3\n"

		err := Run(context.Background(), logger, loadConfig(t), strings.NewReader(input), out)

		// Then: the line is rejected and the game still ends cleanly
		require.NoError(t, err)
		assert.Contains(t, out.String(), "invalid input; enter a digit 1–9 corresponding to a cell")
		assert.Contains(t, out.String(), "Player1 (symbol: o) wins!\n")
	})

	t.Run("Uses the configured players and clear mode", func(t *testing.T) {
		// Given: custom players and ANSI clearing
		conf := loadConfig(t)
		conf.Players.First = config.Player{Name: "Alice", Symbol: "X"}
		conf.Screen.Clear = "ansi"
		out := &bytes.Buffer{}

		err := Run(context.Background(), logger, conf, strings.NewReader(""), out)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "\x1B[2J\x1B[H"))
		assert.Contains(t, out.String(), "Alice's turn (symbol: X)")
	})

	t.Run("Rejects duplicate symbols", func(t *testing.T) {
		conf := loadConfig(t)
		conf.Players.Second.Symbol = conf.Players.First.Symbol

		err := Run(context.Background(), logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not create players")
	})

	t.Run("Reports a canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, logger, loadConfig(t), strings.NewReader("1\n"), &bytes.Buffer{})

		require.ErrorIs(t, err, context.Canceled)
	})
}
