package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type ClearMode string

const (
	ClearNewline ClearMode = "newline"
	ClearANSI    ClearMode = "ansi"

	ansiClear = "\x1B[2J\x1B[H"
)

// Console is a line-oriented terminal over an input and an output stream.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	clear  ClearMode
}

func New(in io.Reader, out io.Writer, clear ClearMode) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		clear:  clear,
	}
}

// ReadLine blocks until a full line arrives, of any length. Only the "\n" or "\r\n" ending is stripped.
// A closed stream yields apperror.ErrEndOfInput.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("could not read line: %w", err)
		}
		if line == "" {
			return "", apperror.ErrEndOfInput
		}
	}

	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"), nil
}

func (that *Console) Show(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

// Clear starts a fresh screen before the board is redrawn.
func (that *Console) Clear() error {
	if that.clear == ClearANSI {
		return that.Show(ansiClear)
	}

	return that.Show("\n")
}
