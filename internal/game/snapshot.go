package game

import (
	"github.com/samdwyer/mazecrawl/internal/state"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// Snapshot is the read-only view handed to the display.
type Snapshot struct {
	Size   int
	Cells  [][]world.Cell
	Player world.Coord
	Score  int
	Level  int
	Status state.Status
}

func newSnapshot(s *state.Session) Snapshot {
	return Snapshot{
		Size:   s.Grid().Size,
		Cells:  s.Grid().Cells(),
		Player: s.Player(),
		Score:  s.Score,
		Level:  s.Level,
		Status: s.Status,
	}
}

// Cell returns the cell at row, col.
func (s Snapshot) Cell(row, col int) world.Cell {
	return s.Cells[row][col]
}
