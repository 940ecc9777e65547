// Package world provides noise-painted terrain maps.
package world

import (
	"github.com/samdwyer/brogue/internal/color"
)

// Cell is a single map tile.
type Cell struct {
	X, Y  int
	Fg    color.RGB
	Bg    color.RGB
	Glyph rune
}

// Rune returns the tile's display character.
func (c Cell) Rune() rune {
	return c.Glyph
}

// MapState tracks whether a map has a grid to read.
type MapState int

const (
	// MapEmpty is the initial state; the grid must not be read.
	MapEmpty MapState = iota
	// MapGenerated means the grid is populated.
	MapGenerated
)

// String returns a human-readable state name.
func (s MapState) String() string {
	switch s {
	case MapEmpty:
		return "empty"
	case MapGenerated:
		return "generated"
	default:
		return "unknown"
	}
}
