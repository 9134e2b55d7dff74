// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import (
	"embed"
	"fmt"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Rules holds the tunable game rules loaded from rules.json.
type Rules struct {
	Size                 int     `json:"size"`                 // Grid side length
	Reward               int     `json:"reward"`               // Score per collectible
	CollectibleOdds      int     `json:"collectibleOdds"`      // 1 in N interior cells is a collectible
	BaseEnemies          int     `json:"baseEnemies"`          // Enemies at level 0
	EnemiesPerLevel      int     `json:"enemiesPerLevel"`      // Extra enemies per level
	FixedEnemies         int     `json:"fixedEnemies"`         // Non-zero overrides the per-level count
	MaxPlacementAttempts int     `json:"maxPlacementAttempts"` // Rejection sampling budget per enemy
	GenerationRetries    uint    `json:"generationRetries"`    // Regeneration attempts on exhaustion
	Palette              Palette `json:"palette"`
}

// Validate checks that the rules can drive a game.
func (r Rules) Validate() error {
	switch {
	case r.Size < 4:
		return fmt.Errorf("rules: size %d is too small", r.Size)
	case r.Reward < 0:
		return fmt.Errorf("rules: negative reward %d", r.Reward)
	case r.CollectibleOdds < 1:
		return fmt.Errorf("rules: collectibleOdds must be at least 1, got %d", r.CollectibleOdds)
	case r.MaxPlacementAttempts < 1:
		return fmt.Errorf("rules: maxPlacementAttempts must be at least 1, got %d", r.MaxPlacementAttempts)
	case r.GenerationRetries < 1:
		return fmt.Errorf("rules: generationRetries must be at least 1, got %d", r.GenerationRetries)
	}
	return nil
}

// LoadRules loads and validates the embedded rules.json.
func LoadRules() (Rules, error) {
	rules, err := Load[Rules]("rules.json")
	if err != nil {
		return Rules{}, err
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// MustLoadRules loads the rules, panicking on error.
func MustLoadRules() Rules {
	rules, err := LoadRules()
	if err != nil {
		panic(err)
	}
	return rules
}
