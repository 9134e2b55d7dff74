package ui

import (
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/mazecrawl/internal/game"
	"github.com/samdwyer/mazecrawl/internal/movement"
	"github.com/samdwyer/mazecrawl/internal/state"
)

// ConfigureLocale loads the "default" domain catalog for lang from dir.
// Messages without a translation are shown in English.
func ConfigureLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

func scoreLine(snap game.Snapshot) string {
	return gotext.Get("Score: %d   Level: %d", snap.Score, snap.Level)
}

func helpLine() string {
	return gotext.Get("Use W, A, S, D to move. Reach 'E' to win. Press Q to save and exit.")
}

// outcomeLine describes what the last turn did, or "" when there is nothing to say.
func outcomeLine(res game.StepResult) string {
	switch {
	case res.Snapshot.Status == state.StatusLost:
		return gotext.Get("Game over! You were caught by an enemy.")
	case res.Snapshot.Status == state.StatusWon:
		return gotext.Get("Congratulations! You reached the exit.")
	case res.Command == game.CmdSaveQuit:
		return gotext.Get("Game saved. Exiting...")
	case res.LevelUp:
		return gotext.Get("Level %d! The maze grows more dangerous.", res.Snapshot.Level)
	case res.Player == movement.MovedAndScored:
		return gotext.Get("You picked up a collectible.")
	case res.Player == movement.Blocked && res.Command != game.CmdNone:
		return gotext.Get("A wall blocks the way.")
	}
	return ""
}

func pressAnyKeyLine() string {
	return gotext.Get("Press any key to exit.")
}
