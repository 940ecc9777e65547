package world

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/brogue/internal/color"
	"github.com/samdwyer/brogue/internal/gamedata"
	"github.com/samdwyer/brogue/internal/geom"
	"github.com/samdwyer/brogue/internal/noise"
	"github.com/samdwyer/brogue/internal/telemetry"
)

const (
	// Default map dimensions: a 16:9 grid scaled by 5.
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Map is a grid of noise-colored tiles.
type Map struct {
	Width          int
	Height         int
	Seed           uint64  // Seed supplied at construction; Generate takes its own
	ColorIntensity float64 // Ceiling of the base green channel (0-255)

	terrain *gamedata.Terrain
	grid    [][]Cell
	state   MapState
}

// NewMap creates an empty map using the embedded terrain definition.
func NewMap(width, height int, seed uint64, colorIntensity float64) *Map {
	return NewMapWithTerrain(width, height, seed, colorIntensity, gamedata.MustLoadTerrain())
}

// NewMapWithTerrain creates an empty map painted with the given terrain.
func NewMapWithTerrain(width, height int, seed uint64, colorIntensity float64, terrain *gamedata.Terrain) *Map {
	return &Map{
		Width:          width,
		Height:         height,
		Seed:           seed,
		ColorIntensity: colorIntensity,
		terrain:        terrain,
		state:          MapEmpty,
	}
}

// State returns whether the map has been generated.
func (m *Map) State() MapState {
	return m.state
}

// Bounds returns the map size as a point.
func (m *Map) Bounds() geom.Point {
	return geom.Pt(m.Width, m.Height)
}

// Generate paints a fresh grid from noise seeded with seed, replacing any
// previous grid. A seed of 0 derives the noise seed from the current time.
func (m *Map) Generate(ctx context.Context, seed uint64) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()
	field := noise.New(seed, m.terrain.Noise)

	cells := make([][]Cell, m.Height)
	land := 0
	for y := range cells {
		cells[y] = make([]Cell, m.Width)
		for x := range cells[y] {
			fg, isLand := m.paint(field, x, y)
			if isLand {
				land++
			}
			cells[y][x] = Cell{
				X:     x,
				Y:     y,
				Fg:    fg,
				Bg:    m.terrain.Background,
				Glyph: m.terrain.Glyph,
			}
		}
	}

	m.grid = cells
	m.state = MapGenerated

	elapsed := time.Since(startTime)
	water := m.Width*m.Height - land
	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int64("map.seed", int64(field.Seed())),
		attribute.Bool("map.time_seeded", seed == 0),
		attribute.Int("map.land_tiles", land),
		attribute.Int("map.water_tiles", water),
		attribute.Int64("map.generation_ms", elapsed.Milliseconds()),
	)
	log.WithFields(log.Fields{
		"seed":    field.Seed(),
		"width":   m.Width,
		"height":  m.Height,
		"land":    land,
		"water":   water,
		"elapsed": elapsed,
	}).Debug("map generated")
}

// paint computes the foreground color for tile (x, y) and whether it is land.
func (m *Map) paint(field *noise.Field, x, y int) (color.RGB, bool) {
	t := m.terrain
	raw := field.Sample(float64(x)/t.Scale, float64(y)/t.Scale)
	return shade(t, (raw+1)/2, m.ColorIntensity)
}

// baseTint is the green base for normalized noise n pulled from the
// reference color. Factors above 1 land on the base itself.
func baseTint(t *gamedata.Terrain, n, colorIntensity float64) color.RGB {
	base := color.FromU8(0, color.SaturateU8(n*colorIntensity), 0)
	return color.LerpEased(t.Reference, base, n*t.ReferenceFactor)
}

// shade maps normalized noise n in [0, 1] to a tile color. Tints with at
// least as much green as blue are land.
func shade(t *gamedata.Terrain, n, colorIntensity float64) (color.RGB, bool) {
	tint := baseTint(t, n, colorIntensity)
	if tint.G >= tint.B {
		return color.LerpEased(t.Land.From, t.Land.To, n*t.Land.Factor), true
	}
	return color.LerpEased(t.Water.From, t.Water.To, n*t.Water.Factor), false
}

// Cell returns the tile at the given position. Reading an empty map or a
// position outside the grid is a programming error and panics.
func (m *Map) Cell(x, y int) Cell {
	if m.state != MapGenerated {
		panic(fmt.Sprintf("world: cell (%d,%d) read before map was generated", x, y))
	}
	if y < 0 || y >= len(m.grid) {
		panic(fmt.Sprintf("world: cell y index %d out of bounds [0,%d)", y, len(m.grid)))
	}
	row := m.grid[y]
	if x < 0 || x >= len(row) {
		panic(fmt.Sprintf("world: cell x index %d out of bounds [0,%d)", x, len(row)))
	}
	return row[x]
}

// Rows returns the number of generated rows.
func (m *Map) Rows() int {
	return len(m.grid)
}

// Cols returns the number of generated columns.
func (m *Map) Cols() int {
	if len(m.grid) == 0 {
		return 0
	}
	return len(m.grid[0])
}
