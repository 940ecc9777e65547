package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/brogue/internal/color"
	"github.com/samdwyer/brogue/internal/entity"
	"github.com/samdwyer/brogue/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the player on top of it and the FPS counter, then
// flushes the frame. The camera origin offsets map coordinates.
func (r *Renderer) Render(m *world.Map, player *entity.Player, cam *entity.Camera, fps int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !cam.Visible(x, y) {
				continue
			}
			cell := m.Cell(x, y)
			sx, sy := cam.ToScreen(x, y)
			r.screen.SetContent(sx, sy, cell.Rune(), Style(cell.Fg, cell.Bg))
		}
	}

	if cam.Visible(player.X, player.Y) {
		sx, sy := cam.ToScreen(player.X, player.Y)
		r.screen.SetContent(sx, sy, player.Symbol, Style(player.Fg, player.Bg))
	}

	r.RenderFPS(fps, 0, 0)
	r.screen.Show()
}

// RenderFPS writes the frame rate readout at (x, y).
func (r *Renderer) RenderFPS(fps, x, y int) {
	r.RenderMessage(fmt.Sprintf("FPS: %d", fps), x, y)
}

// RenderMessage writes white-on-black text at (x, y).
func (r *Renderer) RenderMessage(msg string, x, y int) {
	r.screen.DrawText(x, y, msg, Style(color.White, color.Black))
}

// Style builds a tcell style from foreground and background colors.
func Style(fg, bg color.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.TCell()).Background(bg.TCell())
}
