// Package state holds the GameSession aggregate: everything a save captures.
package state

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/mazecrawl/internal/entity"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// Status is the lifecycle state of a session. The numeric values are the
// codes used in the save file.
type Status int

const (
	StatusInProgress Status = 0
	StatusLost       Status = 1
	StatusWon        Status = 2
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once no further turns may be played.
func (s Status) IsTerminal() bool {
	return s == StatusLost || s == StatusWon
}

// Session is the full mutable state of one playthrough.
type Session struct {
	ID       uuid.UUID // telemetry only, not persisted
	Registry *entity.Registry
	Exit     world.Coord
	Score    int
	Level    int
	Status   Status
}

// New creates an in-progress session from a generated layout.
func New(layout *world.Layout, level int) *Session {
	return &Session{
		ID:       uuid.New(),
		Registry: entity.NewRegistry(layout.Grid, layout.Player, entity.EnemiesAt(layout.Enemies)),
		Exit:     layout.Exit,
		Level:    level,
		Status:   StatusInProgress,
	}
}

// Grid returns the current grid.
func (s *Session) Grid() *world.Grid {
	return s.Registry.Grid()
}

// Player returns the player's position.
func (s *Session) Player() world.Coord {
	return s.Registry.Player()
}

// Advance replaces the maze with a new layout and bumps the level.
// Score carries over.
func (s *Session) Advance(layout *world.Layout) {
	s.Registry.Reset(layout.Grid, layout.Player, entity.EnemiesAt(layout.Enemies))
	s.Exit = layout.Exit
	s.Level++
}

// MarkersDisjoint reports whether the player, exit and every enemy sit on
// distinct coordinates. The exit is skipped once the player stands on it.
func (s *Session) MarkersDisjoint() bool {
	seen := mapset.New[world.Coord]()
	seen.Put(s.Player())
	if s.Exit != s.Player() {
		seen.Put(s.Exit)
	}
	for _, e := range s.Registry.Enemies() {
		if seen.Has(e.Pos) {
			return false
		}
		seen.Put(e.Pos)
	}
	return true
}
