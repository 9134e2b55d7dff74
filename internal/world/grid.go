package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for grid access outside [0, Size).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is a square map of cells.
type Grid struct {
	Size  int
	cells [][]Cell
}

// NewGrid creates a grid of the given side length filled with empty cells.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
		for c := range cells[r] {
			cells[r][c] = CellEmpty
		}
	}
	return &Grid{Size: size, cells: cells}
}

// InBounds returns true if the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// IsBorder returns true if the coordinate is on the outer ring.
func (g *Grid) IsBorder(c Coord) bool {
	return c.Row == 0 || c.Col == 0 || c.Row == g.Size-1 || c.Col == g.Size-1
}

// Get returns the cell at the coordinate.
func (g *Grid) Get(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return CellWall, fmt.Errorf("get %s in %dx%d grid: %w", c, g.Size, g.Size, ErrOutOfBounds)
	}
	return g.cells[c.Row][c.Col], nil
}

// Set writes a cell. Overwriting a wall is allowed here; keeping the border
// intact is the caller's job.
func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set %s in %dx%d grid: %w", c, g.Size, g.Size, ErrOutOfBounds)
	}
	g.cells[c.Row][c.Col] = cell
	return nil
}

// At returns the cell at a coordinate the caller knows is in bounds.
// It panics otherwise, since that can only be a programming error.
func (g *Grid) At(c Coord) Cell {
	cell, err := g.Get(c)
	if err != nil {
		panic(err)
	}
	return cell
}

// Put writes a cell at a coordinate the caller knows is in bounds.
func (g *Grid) Put(c Coord, cell Cell) {
	if err := g.Set(c, cell); err != nil {
		panic(err)
	}
}

// Rows returns each row rendered as a string of cell runes.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Size)
	for r, row := range g.cells {
		runes := make([]rune, len(row))
		for c, cell := range row {
			runes[c] = cell.Rune()
		}
		rows[r] = string(runes)
	}
	return rows
}

// Cells returns a deep copy of the cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.Size)
	for r, row := range g.cells {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{Size: g.Size, cells: g.Cells()}
}

// Equal reports whether two grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size != other.Size {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Find returns the coordinates of every cell of the given kind in row-major order.
func (g *Grid) Find(kind Cell) []Coord {
	var found []Coord
	for r := range g.cells {
		for c, cell := range g.cells[r] {
			if cell == kind {
				found = append(found, Coord{Row: r, Col: c})
			}
		}
	}
	return found
}
