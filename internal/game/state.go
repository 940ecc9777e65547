// Package game provides the main game loop and state management.
package game

import (
	"github.com/samdwyer/brogue/internal/entity"
	"github.com/samdwyer/brogue/internal/gamedata"
	"github.com/samdwyer/brogue/internal/geom"
	"github.com/samdwyer/brogue/internal/world"
)

// State owns everything that persists between ticks.
type State struct {
	Width  int
	Height int
	Player *entity.Player
	Map    *world.Map
}

// NewState creates an ungenerated map and a player at its center. The map's
// color intensity comes from the terrain definition.
func NewState(width, height int, seed uint64, terrain *gamedata.Terrain) *State {
	return &State{
		Width:  width,
		Height: height,
		Player: entity.NewPlayer(width/2, height/2),
		Map:    world.NewMapWithTerrain(width, height, seed, terrain.ColorIntensity, terrain),
	}
}

// Bounds returns the area the player may move in.
func (s *State) Bounds() geom.Point {
	return geom.Pt(s.Width, s.Height)
}

// Highlight recolors the player's background with the tile underneath.
func (s *State) Highlight() {
	cell := s.Map.Cell(s.Player.X, s.Player.Y)
	s.Player.Bg = cell.Fg
}
