package entity

import "github.com/samdwyer/brogue/internal/geom"

// Camera is a movable viewport. Its origin is the map coordinate drawn at
// the top-left of the screen.
type Camera struct {
	Cols, Rows int
	Origin     geom.Point
}

// NewCamera creates a camera of the given viewport size at the map origin.
func NewCamera(cols, rows int) *Camera {
	return &Camera{Cols: cols, Rows: rows}
}

// SetOrigin moves the viewport without clamping.
func (c *Camera) SetOrigin(x, y int) {
	c.Origin = geom.Pt(x, y)
}

// ToScreen converts a map coordinate to a screen coordinate.
func (c *Camera) ToScreen(x, y int) (int, int) {
	return x - c.Origin.X, y - c.Origin.Y
}

// Visible reports whether the map coordinate falls inside the viewport.
func (c *Camera) Visible(x, y int) bool {
	sx, sy := c.ToScreen(x, y)
	return geom.Pt(sx, sy).In(geom.Pt(c.Cols, c.Rows))
}

// MoveUp pans the viewport one row up, stopping at the top edge.
func (c *Camera) MoveUp(bounds geom.Point) { c.move(0, -1, bounds) }

// MoveDown pans the viewport one row down, stopping at the bottom edge.
func (c *Camera) MoveDown(bounds geom.Point) { c.move(0, 1, bounds) }

// MoveLeft pans the viewport one column left, stopping at the left edge.
func (c *Camera) MoveLeft(bounds geom.Point) { c.move(-1, 0, bounds) }

// MoveRight pans the viewport one column right, stopping at the right edge.
func (c *Camera) MoveRight(bounds geom.Point) { c.move(1, 0, bounds) }

func (c *Camera) move(dx, dy int, bounds geom.Point) {
	pos := step(c.Origin, dx, dy, bounds)
	c.SetOrigin(pos.X, pos.Y)
}

var _ Movable = (*Camera)(nil)
