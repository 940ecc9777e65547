package entity

import (
	"github.com/samdwyer/brogue/internal/color"
	"github.com/samdwyer/brogue/internal/geom"
)

// Player is the single glyph the user walks around the map.
type Player struct {
	X, Y   int       // Current position on the map
	Symbol rune      // Display symbol
	Fg     color.RGB // Glyph color
	Bg     color.RGB // Cell color, recolored each tick from the tile underneath
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Symbol: 'B',
		Fg:     color.White,
		Bg:     color.Black,
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// SetPosition places the player without clamping.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// MoveUp steps one row up, stopping at the top edge.
func (p *Player) MoveUp(bounds geom.Point) { p.move(0, -1, bounds) }

// MoveDown steps one row down, stopping at the bottom edge.
func (p *Player) MoveDown(bounds geom.Point) { p.move(0, 1, bounds) }

// MoveLeft steps one column left, stopping at the left edge.
func (p *Player) MoveLeft(bounds geom.Point) { p.move(-1, 0, bounds) }

// MoveRight steps one column right, stopping at the right edge.
func (p *Player) MoveRight(bounds geom.Point) { p.move(1, 0, bounds) }

func (p *Player) move(dx, dy int, bounds geom.Point) {
	pos := step(geom.Pt(p.X, p.Y), dx, dy, bounds)
	p.SetPosition(pos.X, pos.Y)
}

// Ensure Player implements Movable
var _ Movable = (*Player)(nil)
