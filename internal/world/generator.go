package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/telemetry"
)

const (
	// Default maze parameters
	DefaultSize                 = 10
	DefaultCollectibleOdds      = 8 // 1 in 8 interior cells holds a collectible
	DefaultBaseEnemies          = 3
	DefaultEnemiesPerLevel      = 2
	DefaultMaxPlacementAttempts = 1000

	minSize = 4 // smallest grid with a distinct start and exit
)

var (
	// ErrGenerationExhausted is returned when enemy placement runs out of retries.
	ErrGenerationExhausted = errors.New("maze generation exhausted placement attempts")
	// ErrInvalidParams is returned for a size or level the generator cannot use.
	ErrInvalidParams = errors.New("invalid generation parameters")
)

// GenParams controls maze generation.
type GenParams struct {
	Size  int
	Level int

	// CollectibleOdds: each interior cell is a collectible with probability 1/CollectibleOdds.
	CollectibleOdds int

	// Enemy count is BaseEnemies + Level*EnemiesPerLevel, unless FixedEnemies is non-zero.
	BaseEnemies     int
	EnemiesPerLevel int
	FixedEnemies    int

	// Rejection sampling budget per enemy.
	MaxPlacementAttempts int
}

// DefaultGenParams returns the standard parameters for a level.
func DefaultGenParams(level int) GenParams {
	return GenParams{
		Size:                 DefaultSize,
		Level:                level,
		CollectibleOdds:      DefaultCollectibleOdds,
		BaseEnemies:          DefaultBaseEnemies,
		EnemiesPerLevel:      DefaultEnemiesPerLevel,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// EnemyCount returns how many enemies a maze with these parameters holds.
func (p GenParams) EnemyCount() int {
	if p.FixedEnemies > 0 {
		return p.FixedEnemies
	}
	return p.BaseEnemies + p.Level*p.EnemiesPerLevel
}

// StartPos returns the player start coordinate for a grid size.
func StartPos(size int) Coord {
	return Coord{Row: 1, Col: 1}
}

// ExitPos returns the exit coordinate for a grid size.
func ExitPos(size int) Coord {
	return Coord{Row: size - 2, Col: size - 2}
}

// Layout is a freshly generated maze.
type Layout struct {
	Grid    *Grid
	Player  Coord
	Exit    Coord
	Enemies []Coord // spawn order
}

// Generate builds a new maze. Collectibles are placed per cell independently,
// so the result is not guaranteed to be traversable.
func Generate(ctx context.Context, rng *rand.Rand, p GenParams) (*Layout, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	if p.Size < minSize || p.Level < 1 || p.CollectibleOdds < 1 {
		return nil, fmt.Errorf("size %d level %d odds %d: %w", p.Size, p.Level, p.CollectibleOdds, ErrInvalidParams)
	}

	startTime := time.Now()
	grid := NewGrid(p.Size)

	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			pos := Coord{Row: r, Col: c}
			if grid.IsBorder(pos) {
				grid.Put(pos, CellWall)
				continue
			}
			if rng.Intn(p.CollectibleOdds) == 0 {
				grid.Put(pos, CellCollectible)
			}
		}
	}

	// Start and exit overwrite whatever was rolled there
	layout := &Layout{
		Grid:   grid,
		Player: StartPos(p.Size),
		Exit:   ExitPos(p.Size),
	}
	grid.Put(layout.Player, CellPlayer)
	grid.Put(layout.Exit, CellExit)

	count := p.EnemyCount()
	layout.Enemies = make([]Coord, 0, count)
	for i := 0; i < count; i++ {
		pos, err := placeEnemy(grid, rng, p.MaxPlacementAttempts)
		if err != nil {
			span.SetAttributes(attribute.Bool("exhausted", true), attribute.Int("maze.enemies_placed", i))
			return nil, fmt.Errorf("enemy %d of %d: %w", i+1, count, err)
		}
		grid.Put(pos, CellEnemy)
		layout.Enemies = append(layout.Enemies, pos)
	}

	span.SetAttributes(
		attribute.Int("maze.size", p.Size),
		attribute.Int("maze.level", p.Level),
		attribute.Int("maze.enemy_count", count),
		attribute.Int("maze.collectibles", len(grid.Find(CellCollectible))),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return layout, nil
}

// placeEnemy samples interior coordinates until it finds an empty cell.
func placeEnemy(grid *Grid, rng *rand.Rand, attempts int) (Coord, error) {
	interior := grid.Size - 2
	for i := 0; i < attempts; i++ {
		pos := Coord{Row: 1 + rng.Intn(interior), Col: 1 + rng.Intn(interior)}
		if grid.At(pos) == CellEmpty {
			return pos, nil
		}
	}
	return Coord{}, ErrGenerationExhausted
}
