package gamedata

import (
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/brogue/internal/color"
	"github.com/samdwyer/brogue/internal/noise"
)

// GradientDef is a two-color ramp as stored in terrain.json.
type GradientDef struct {
	From   string  `json:"from"`   // Hex color at factor 0
	To     string  `json:"to"`     // Hex color at factor 1
	Factor float64 `json:"factor"` // Multiplier applied to the normalized noise value
}

// ReferenceDef is the color the base tint is pulled from before classification.
type ReferenceDef struct {
	Color  string  `json:"color"`
	Factor float64 `json:"factor"`
}

// NoiseDef holds fractal noise parameters.
type NoiseDef struct {
	Octaves    int     `json:"octaves"`
	Gain       float64 `json:"gain"`
	Lacunarity float64 `json:"lacunarity"`
	Frequency  float64 `json:"frequency"`
}

// TerrainDef describes how noise is painted into map tiles, loaded from JSON.
type TerrainDef struct {
	Scale          float64      `json:"scale"`          // Divisor applied to tile coordinates before sampling
	ColorIntensity float64      `json:"colorIntensity"` // Default green channel ceiling (0-255)
	Glyph          string       `json:"glyph"`          // Tile character
	Background     string       `json:"background"`     // Tile background color
	Reference      ReferenceDef `json:"reference"`
	Land           GradientDef  `json:"land"`
	Water          GradientDef  `json:"water"`
	Noise          NoiseDef     `json:"noise"`
}

// Gradient is a resolved color ramp.
type Gradient struct {
	From, To color.RGB
	Factor   float64
}

// Terrain is a TerrainDef with colors parsed and ready for generation.
type Terrain struct {
	Scale           float64
	ColorIntensity  float64
	Glyph           rune
	Background      color.RGB
	Reference       color.RGB
	ReferenceFactor float64
	Land            Gradient
	Water           Gradient
	Noise           noise.Options
}

// Resolve parses the definition's colors and glyph.
func (d *TerrainDef) Resolve() (*Terrain, error) {
	if d.Scale <= 0 {
		return nil, fmt.Errorf("terrain scale must be positive, got %v", d.Scale)
	}

	if d.Noise.Gain <= 0 {
		return nil, fmt.Errorf("terrain noise gain must be positive, got %v", d.Noise.Gain)
	}
	if d.Noise.Lacunarity <= 0 {
		return nil, fmt.Errorf("terrain noise lacunarity must be positive, got %v", d.Noise.Lacunarity)
	}

	glyph, size := utf8.DecodeRuneInString(d.Glyph)
	if glyph == utf8.RuneError || size != len(d.Glyph) {
		return nil, fmt.Errorf("terrain glyph must be a single character, got %q", d.Glyph)
	}

	bg, err := ParseHexColor(d.Background)
	if err != nil {
		return nil, fmt.Errorf("terrain background: %w", err)
	}
	ref, err := ParseHexColor(d.Reference.Color)
	if err != nil {
		return nil, fmt.Errorf("terrain reference: %w", err)
	}
	land, err := d.Land.resolve()
	if err != nil {
		return nil, fmt.Errorf("terrain land: %w", err)
	}
	water, err := d.Water.resolve()
	if err != nil {
		return nil, fmt.Errorf("terrain water: %w", err)
	}

	return &Terrain{
		Scale:           d.Scale,
		ColorIntensity:  d.ColorIntensity,
		Glyph:           glyph,
		Background:      bg,
		Reference:       ref,
		ReferenceFactor: d.Reference.Factor,
		Land:            land,
		Water:           water,
		Noise: noise.Options{
			Octaves:    d.Noise.Octaves,
			Gain:       d.Noise.Gain,
			Lacunarity: d.Noise.Lacunarity,
			Frequency:  d.Noise.Frequency,
		},
	}, nil
}

func (g GradientDef) resolve() (Gradient, error) {
	from, err := ParseHexColor(g.From)
	if err != nil {
		return Gradient{}, err
	}
	to, err := ParseHexColor(g.To)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{From: from, To: to, Factor: g.Factor}, nil
}

// LoadTerrain loads and resolves the embedded terrain.json file.
func LoadTerrain() (*Terrain, error) {
	def, err := Load[TerrainDef]("terrain.json")
	if err != nil {
		return nil, err
	}
	return def.Resolve()
}

// MustLoadTerrain loads the terrain definition, panicking on error.
func MustLoadTerrain() *Terrain {
	terrain, err := LoadTerrain()
	if err != nil {
		panic(err)
	}
	return terrain
}
