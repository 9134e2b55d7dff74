package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/mazecrawl/internal/game"
)

// FormatSnapshot renders a snapshot as plain text: the grid rows followed by
// the score line.
func FormatSnapshot(snap game.Snapshot) string {
	var b strings.Builder
	for row := 0; row < snap.Size; row++ {
		for col := 0; col < snap.Size; col++ {
			b.WriteRune(snap.Cell(row, col).Rune())
		}
		b.WriteByte('\n')
	}
	b.WriteString(scoreLine(snap))
	b.WriteByte('\n')
	return b.String()
}

// RunText plays from a stream of keys, one rune per command, and prints the
// board after every turn. Unmapped runes, newlines included, are skipped.
// End of input saves and quits so piped sessions can be resumed.
func RunText(ctx context.Context, g *game.Game, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, FormatSnapshot(g.Snapshot()))
	fmt.Fprintln(out, helpLine())

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanRunes)

	for {
		cmd := game.CmdSaveQuit
		if scanner.Scan() {
			cmd = game.ParseCommand([]rune(scanner.Text())[0])
			if cmd == game.CmdNone {
				continue
			}
		} else if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		res, err := g.Step(ctx, cmd)
		if err != nil {
			return fmt.Errorf("step %s: %w", cmd, err)
		}

		if res.Command != game.CmdSaveQuit {
			fmt.Fprint(out, FormatSnapshot(res.Snapshot))
		}
		if msg := outcomeLine(res); msg != "" {
			fmt.Fprintln(out, msg)
		}
		if res.Quit {
			return nil
		}
	}
}
