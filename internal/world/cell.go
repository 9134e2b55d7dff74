// Package world provides the maze grid and maze generation.
package world

// Cell represents the content of a single grid position.
// The grid stores kinds only; entity positions are owned by the registry.
type Cell rune

const (
	// CellEmpty is walkable floor.
	CellEmpty Cell = ' '
	// CellWall is impassable. The outer ring of every grid is wall.
	CellWall Cell = '#'
	// CellCollectible awards score when the player steps on it.
	CellCollectible Cell = '*'
	// CellPlayer marks the player's position.
	CellPlayer Cell = 'P'
	// CellExit marks the exit of the current maze.
	CellExit Cell = 'E'
	// CellEnemy marks an enemy's position.
	CellEnemy Cell = 'X'
)

// IsMarker returns true for the cells that mark an entity (player, exit, enemy).
func (c Cell) IsMarker() bool {
	return c == CellPlayer || c == CellExit || c == CellEnemy
}

// IsValid returns true if the cell is one of the known kinds.
func (c Cell) IsValid() bool {
	switch c {
	case CellEmpty, CellWall, CellCollectible, CellPlayer, CellExit, CellEnemy:
		return true
	default:
		return false
	}
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellCollectible:
		return "collectible"
	case CellPlayer:
		return "player"
	case CellExit:
		return "exit"
	case CellEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
