// Package entity provides the player and enemy registry.
package entity

import "github.com/samdwyer/mazecrawl/internal/world"

// Enemy is a memoryless random walker. Its position is its only state.
type Enemy struct {
	Pos world.Coord
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(pos world.Coord) Enemy {
	return Enemy{Pos: pos}
}

// Position returns the enemy's current coordinates.
func (e Enemy) Position() world.Coord {
	return e.Pos
}

// EnemiesAt builds an enemy sequence from spawn positions, keeping their order.
func EnemiesAt(positions []world.Coord) []Enemy {
	enemies := make([]Enemy, len(positions))
	for i, pos := range positions {
		enemies[i] = NewEnemy(pos)
	}
	return enemies
}
