package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazecrawl/internal/game"
	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// Renderer draws snapshots onto a Screen.
type Renderer struct {
	screen *Screen
	styles map[world.Cell]tcell.Style
}

// NewRenderer creates a renderer using the palette's colors.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	fg := func(hex string, fallback tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(palette.Color(hex, fallback))
	}
	return &Renderer{
		screen: screen,
		styles: map[world.Cell]tcell.Style{
			world.CellWall:        fg(palette.Wall, tcell.ColorDarkGray),
			world.CellEmpty:       fg(palette.Empty, tcell.ColorGray),
			world.CellCollectible: fg(palette.Collectible, tcell.ColorGold),
			world.CellPlayer:      fg(palette.Player, tcell.ColorYellow).Bold(true),
			world.CellExit:        fg(palette.Exit, tcell.ColorGreen).Bold(true),
			world.CellEnemy:       fg(palette.Enemy, tcell.ColorRed).Bold(true),
		},
	}
}

// Render draws the grid, the score line and up to two message lines.
func (r *Renderer) Render(snap game.Snapshot, messages ...string) {
	r.screen.Clear()

	for row := 0; row < snap.Size; row++ {
		for col := 0; col < snap.Size; col++ {
			cell := snap.Cell(row, col)
			r.screen.SetContent(col, row, cell.Rune(), r.styles[cell])
		}
	}

	y := snap.Size + 1
	r.RenderMessage(scoreLine(snap), y)
	r.RenderMessage(helpLine(), y+1)
	for i, msg := range messages {
		r.RenderMessage(msg, y+3+i)
	}

	r.screen.Show()
}

// RenderMessage writes msg at row y without flushing.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
