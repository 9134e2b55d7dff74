package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/mazecrawl/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mazes and enemy moves.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Leveling: reaching the exit generates the next level instead of winning.
	Leveling bool

	// MaxLevel ends a leveling game with a win once this level is cleared.
	// 0 means there is no final level.
	MaxLevel int

	Rules gamedata.Rules
}

// DefaultConfig returns the leveling variant with the embedded rules.
func DefaultConfig() Config {
	return Config{
		Leveling: true,
		Rules:    gamedata.MustLoadRules(),
	}
}

// NewRand creates the game's random source from the configured seed.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
