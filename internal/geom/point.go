// Package geom provides integer grid geometry shared by entities and the map.
package geom

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp bounds p to the rectangle [0, bounds.X) x [0, bounds.Y).
func (p Point) Clamp(bounds Point) Point {
	return Clamp(p.X, p.Y, bounds.X, bounds.Y)
}

// In reports whether p lies inside [0, bounds.X) x [0, bounds.Y).
func (p Point) In(bounds Point) bool {
	return p.X >= 0 && p.X < bounds.X && p.Y >= 0 && p.Y < bounds.Y
}

// Clamp returns (x, y) constrained to [0, maxWidth-1] x [0, maxHeight-1].
func Clamp(x, y, maxWidth, maxHeight int) Point {
	return Point{
		X: min(max(x, 0), maxWidth-1),
		Y: min(max(y, 0), maxHeight-1),
	}
}
