package entity

import "github.com/samdwyer/mazecrawl/internal/world"

// Registry owns the player position and the enemy sequence, and keeps the
// grid's marker cells in sync with them. It does not check move legality.
type Registry struct {
	grid    *world.Grid
	player  world.Coord
	enemies []Enemy
}

// NewRegistry creates a registry over a grid. The grid is expected to already
// hold the markers for the given positions.
func NewRegistry(grid *world.Grid, player world.Coord, enemies []Enemy) *Registry {
	return &Registry{
		grid:    grid,
		player:  player,
		enemies: enemies,
	}
}

// ScanEnemies collects every enemy marker on the grid in row-major order.
func ScanEnemies(grid *world.Grid) []Enemy {
	return EnemiesAt(grid.Find(world.CellEnemy))
}

// Grid returns the grid the registry mutates.
func (r *Registry) Grid() *world.Grid {
	return r.grid
}

// Player returns the player's current position.
func (r *Registry) Player() world.Coord {
	return r.player
}

// Enemies returns a copy of the enemy sequence.
func (r *Registry) Enemies() []Enemy {
	out := make([]Enemy, len(r.enemies))
	copy(out, r.enemies)
	return out
}

// Enemy returns the enemy at index i.
func (r *Registry) Enemy(i int) Enemy {
	return r.enemies[i]
}

// EnemyCount returns the number of enemies.
func (r *Registry) EnemyCount() int {
	return len(r.enemies)
}

// MovePlayerTo relocates the player, clearing the old cell.
func (r *Registry) MovePlayerTo(pos world.Coord) {
	r.grid.Put(r.player, world.CellEmpty)
	r.player = pos
	r.grid.Put(pos, world.CellPlayer)
}

// MoveEnemyTo relocates enemy i, clearing the old cell.
func (r *Registry) MoveEnemyTo(i int, pos world.Coord) {
	e := &r.enemies[i]
	r.grid.Put(e.Pos, world.CellEmpty)
	e.Pos = pos
	r.grid.Put(pos, world.CellEnemy)
}

// Reset replaces the grid, player and enemies, as on a new level.
func (r *Registry) Reset(grid *world.Grid, player world.Coord, enemies []Enemy) {
	r.grid = grid
	r.player = player
	r.enemies = enemies
}
