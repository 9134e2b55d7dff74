package world

import "fmt"

// Coord is a (row, column) grid position.
type Coord struct {
	Row, Col int
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order. Random direction
// selection indexes into this slice.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offset of a single step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}
