// Package movement decides the outcome of a proposed move for any entity kind.
package movement

import (
	"math/rand"

	"github.com/samdwyer/mazecrawl/internal/state"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// DefaultReward is the score a collectible is worth.
const DefaultReward = 10

// EntityKind identifies which rule set a move is resolved with.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
)

// String returns a human-readable kind name.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Result is the outcome class of a move.
type Result int

const (
	// Blocked - the entity stays where it is
	Blocked Result = iota
	// Moved - plain relocation
	Moved
	// MovedAndScored - the player steps onto a collectible
	MovedAndScored
	// MovedAndCollided - the player walked into an enemy; no relocation happens
	MovedAndCollided
	// MovedAndWon - the player reached the exit
	MovedAndWon
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case MovedAndScored:
		return "scored"
	case MovedAndCollided:
		return "collided"
	case MovedAndWon:
		return "won"
	default:
		return "unknown"
	}
}

// Relocates returns true if Apply moves the entity for this result.
func (r Result) Relocates() bool {
	return r == Moved || r == MovedAndScored
}

// Move is a proposed one-step move. Index selects the enemy for KindEnemy.
type Move struct {
	Kind  EntityKind
	Index int
	Dir   world.Direction
}

// Outcome contains the resolution of a Move.
type Outcome struct {
	Move   Move
	Result Result
	From   world.Coord
	To     world.Coord
}

// rule maps the content of the target cell to a result.
type rule func(target world.Cell) Result

// Resolver resolves moves through a rule table keyed by entity kind.
type Resolver struct {
	rules  map[EntityKind]rule
	rng    *rand.Rand
	reward int
}

// NewResolver creates a resolver. rng drives enemy direction choice.
func NewResolver(rng *rand.Rand, reward int) *Resolver {
	return &Resolver{
		rules: map[EntityKind]rule{
			KindPlayer: playerRule,
			KindEnemy:  enemyRule,
		},
		rng:    rng,
		reward: reward,
	}
}

// Reward returns the score credited per collectible.
func (r *Resolver) Reward() int {
	return r.reward
}

// RandomDirection picks one of the four directions uniformly.
func (r *Resolver) RandomDirection() world.Direction {
	return world.Directions[r.rng.Intn(len(world.Directions))]
}

// Resolve computes the outcome of a move without changing the session.
// The border ring is always wall, so the target of an interior entity is
// always inside the grid.
func (r *Resolver) Resolve(s *state.Session, m Move) Outcome {
	var from world.Coord
	switch m.Kind {
	case KindEnemy:
		from = s.Registry.Enemy(m.Index).Pos
	default:
		from = s.Player()
	}

	to := from.Step(m.Dir)
	outcome := Outcome{Move: m, From: from, To: to, Result: Blocked}

	apply, ok := r.rules[m.Kind]
	if !ok {
		return outcome
	}
	outcome.Result = apply(s.Grid().At(to))
	return outcome
}

// Apply performs the registry mutation for a relocating outcome and credits
// the reward for a collectible. It returns true if anything moved.
// Collided and won outcomes are left to the caller.
func (r *Resolver) Apply(s *state.Session, o Outcome) bool {
	if !o.Result.Relocates() {
		return false
	}

	if o.Result == MovedAndScored {
		s.Score += r.reward
		s.Grid().Put(o.To, world.CellEmpty)
	}

	switch o.Move.Kind {
	case KindEnemy:
		s.Registry.MoveEnemyTo(o.Move.Index, o.To)
	default:
		s.Registry.MovePlayerTo(o.To)
	}
	return true
}

// playerRule: walls block, enemies end the game, collectibles score,
// the exit wins.
func playerRule(target world.Cell) Result {
	switch target {
	case world.CellWall:
		return Blocked
	case world.CellEnemy:
		return MovedAndCollided
	case world.CellCollectible:
		return MovedAndScored
	case world.CellExit:
		return MovedAndWon
	case world.CellEmpty:
		return Moved
	default:
		return Blocked
	}
}

// enemyRule: enemies only ever step onto empty floor. They never collect and
// never initiate a collision, since the player's cell is never empty.
func enemyRule(target world.Cell) Result {
	if target == world.CellEmpty {
		return Moved
	}
	return Blocked
}
