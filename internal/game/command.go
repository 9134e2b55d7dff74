// Package game provides the turn-based game state machine.
package game

import "github.com/samdwyer/mazecrawl/internal/world"

// Command is one external input per turn.
type Command int

const (
	// CmdNone is an unmapped key. It does not consume a turn.
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	// CmdSaveQuit writes the save slot and ends the session.
	CmdSaveQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdSaveQuit:
		return "save_quit"
	default:
		return "unknown"
	}
}

// Direction returns the move direction for a movement command.
func (c Command) Direction() (world.Direction, bool) {
	switch c {
	case CmdUp:
		return world.Up, true
	case CmdDown:
		return world.Down, true
	case CmdLeft:
		return world.Left, true
	case CmdRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// ParseCommand maps a key to a command: w/a/s/d move, q saves and quits.
// Anything else is CmdNone.
func ParseCommand(key rune) Command {
	switch key {
	case 'w', 'W':
		return CmdUp
	case 's', 'S':
		return CmdDown
	case 'a', 'A':
		return CmdLeft
	case 'd', 'D':
		return CmdRight
	case 'q', 'Q':
		return CmdSaveQuit
	default:
		return CmdNone
	}
}
