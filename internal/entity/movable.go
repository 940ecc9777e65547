// Package entity provides the player and camera.
package entity

import "github.com/samdwyer/brogue/internal/geom"

// Movable is anything with a position that steps one cell at a time,
// clamped to the given bounds.
type Movable interface {
	MoveUp(bounds geom.Point)
	MoveDown(bounds geom.Point)
	MoveLeft(bounds geom.Point)
	MoveRight(bounds geom.Point)
}

// step returns pos moved by (dx, dy) and clamped to bounds.
func step(pos geom.Point, dx, dy int, bounds geom.Point) geom.Point {
	return pos.Add(dx, dy).Clamp(bounds)
}
