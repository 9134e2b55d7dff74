package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazecrawl/internal/game"
)

// App runs the interactive loop: render, read one key, play one turn.
type App struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
}

// NewApp binds a started game to a screen.
func NewApp(screen *Screen, renderer *Renderer, g *game.Game) *App {
	return &App{screen: screen, renderer: renderer, game: g}
}

// Run plays until the session ends or the player saves and quits.
// The screen is left open; the caller closes it.
func (a *App) Run(ctx context.Context) error {
	message := ""
	a.renderer.Render(a.game.Snapshot())

	for {
		ev := a.screen.PollEvent()
		var cmd game.Command
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd = keyCommand(ev.Key(), ev.Rune())
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Render(a.game.Snapshot(), message)
			continue
		case nil:
			// Screen finalized underneath us
			return nil
		default:
			continue
		}

		res, err := a.game.Step(ctx, cmd)
		if err != nil {
			return fmt.Errorf("step %s: %w", cmd, err)
		}
		message = outcomeLine(res)

		if res.Quit {
			if res.Command == game.CmdSaveQuit {
				return nil
			}
			a.renderer.Render(res.Snapshot, message, pressAnyKeyLine())
			a.waitForKey()
			return nil
		}
		a.renderer.Render(res.Snapshot, message)
	}
}

func (a *App) waitForKey() {
	for {
		switch a.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

// keyCommand maps a key press to a command. Arrow keys move; Esc and Ctrl-C
// save and quit like Q.
func keyCommand(key tcell.Key, r rune) game.Command {
	switch key {
	case tcell.KeyUp:
		return game.CmdUp
	case tcell.KeyDown:
		return game.CmdDown
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdSaveQuit
	case tcell.KeyRune:
		return game.ParseCommand(r)
	}
	return game.CmdNone
}
