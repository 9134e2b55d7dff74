// Package save encodes game sessions to the textual save format and stores
// the single save slot.
//
// Layout, one item per line:
//
//	<Size rows of Size cell characters>
//	<playerRow> <playerCol>
//	<exitRow> <exitCol>
//	<score>
//	<status: 0=in progress, 1=lost, 2=won>
package save

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/mazecrawl/internal/entity"
	"github.com/samdwyer/mazecrawl/internal/state"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// trailerLines is the number of lines after the grid.
const trailerLines = 4

// ErrCorruptSave is returned when save data does not match the expected layout.
var ErrCorruptSave = errors.New("corrupt save")

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptSave, fmt.Sprintf(format, args...))
}

// Encode writes a session in the save format.
func Encode(s *state.Session) []byte {
	var buf bytes.Buffer
	for _, row := range s.Grid().Rows() {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}

	player := s.Player()
	fmt.Fprintf(&buf, "%d %d\n", player.Row, player.Col)
	fmt.Fprintf(&buf, "%d %d\n", s.Exit.Row, s.Exit.Col)
	fmt.Fprintf(&buf, "%d\n", s.Score)
	fmt.Fprintf(&buf, "%d\n", int(s.Status))
	return buf.Bytes()
}

// Decode parses save data. size is the expected grid side length; zero takes
// the size from the first row. The level is not part of the format, so the
// returned session is at level 1. Enemies are rebuilt by scanning the grid.
func Decode(data []byte, size int) (*state.Session, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	if size == 0 && len(lines) > 0 {
		size = len([]rune(lines[0]))
	}
	if size < 3 {
		return nil, corrupt("grid size %d", size)
	}
	if len(lines) != size+trailerLines {
		return nil, corrupt("%d lines, want %d", len(lines), size+trailerLines)
	}

	grid, err := decodeGrid(lines[:size], size)
	if err != nil {
		return nil, err
	}

	trailer := lines[size:]
	player, err := parseCoord(trailer[0], "player")
	if err != nil {
		return nil, err
	}
	exit, err := parseCoord(trailer[1], "exit")
	if err != nil {
		return nil, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(trailer[2]))
	if err != nil || score < 0 {
		return nil, corrupt("score %q", trailer[2])
	}
	code, err := strconv.Atoi(strings.TrimSpace(trailer[3]))
	status := state.Status(code)
	if err != nil || (status != state.StatusInProgress && status != state.StatusLost && status != state.StatusWon) {
		return nil, corrupt("status %q", trailer[3])
	}

	for _, pos := range []world.Coord{player, exit} {
		if !grid.InBounds(pos) || grid.IsBorder(pos) {
			return nil, corrupt("coordinate %s outside the interior", pos)
		}
	}
	if err := checkMarkers(grid, player, exit, status); err != nil {
		return nil, err
	}

	enemies := entity.ScanEnemies(grid)
	occupied := mapset.New[world.Coord]()
	for _, e := range enemies {
		occupied.Put(e.Pos)
	}
	if occupied.Has(player) || occupied.Has(exit) {
		return nil, corrupt("enemy overlaps player or exit")
	}

	return &state.Session{
		ID:       uuid.New(),
		Registry: entity.NewRegistry(grid, player, enemies),
		Exit:     exit,
		Score:    score,
		Level:    1,
		Status:   status,
	}, nil
}

// checkMarkers requires exactly one player marker, at player, and exactly one
// exit marker, at exit. The exit marker is absent only in a won session where
// the player stands on the exit.
func checkMarkers(grid *world.Grid, player, exit world.Coord, status state.Status) error {
	players := grid.Find(world.CellPlayer)
	if len(players) != 1 || players[0] != player {
		return corrupt("player at %s but grid has player markers at %v", player, players)
	}

	exits := grid.Find(world.CellExit)
	if exit == player {
		if status != state.StatusWon {
			return corrupt("player on the exit at %s with status %v", exit, status)
		}
		if len(exits) != 0 {
			return corrupt("player on the exit but grid has exit markers at %v", exits)
		}
		return nil
	}
	if len(exits) != 1 || exits[0] != exit {
		return corrupt("exit at %s but grid has exit markers at %v", exit, exits)
	}
	return nil
}

func decodeGrid(rows []string, size int) (*world.Grid, error) {
	grid := world.NewGrid(size)
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, corrupt("row %d has width %d, want %d", r, len(runes), size)
		}
		for c, ch := range runes {
			cell := world.Cell(ch)
			if !cell.IsValid() {
				return nil, corrupt("unknown cell %q at %d,%d", ch, r, c)
			}
			pos := world.Coord{Row: r, Col: c}
			if grid.IsBorder(pos) && cell != world.CellWall {
				return nil, corrupt("border cell %d,%d is %v", r, c, cell)
			}
			grid.Put(pos, cell)
		}
	}
	return grid, nil
}

func parseCoord(line, what string) (world.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return world.Coord{}, corrupt("%s coordinates %q", what, line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return world.Coord{}, corrupt("%s row %q", what, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return world.Coord{}, corrupt("%s col %q", what, fields[1])
	}
	return world.Coord{Row: row, Col: col}, nil
}
