// Package noise provides seeded 2D fractal value noise.
package noise

import (
	"math"
	"math/rand/v2"
	"time"
)

// Options tune the fractal sum.
type Options struct {
	Octaves    int     // Number of noise layers summed
	Gain       float64 // Amplitude multiplier per octave
	Lacunarity float64 // Frequency multiplier per octave
	Frequency  float64 // Base frequency applied to input coordinates
}

// DefaultOptions returns 4 octaves, gain 0.5, lacunarity 2.0 at unit frequency.
func DefaultOptions() Options {
	return Options{
		Octaves:    4,
		Gain:       0.5,
		Lacunarity: 2.0,
		Frequency:  1.0,
	}
}

const tableSize = 256

// Field samples fractal value noise. It is deterministic for a given seed.
type Field struct {
	seed     uint64
	opts     Options
	perm     [tableSize * 2]int
	values   [tableSize]float64
	bounding float64
}

// New creates a noise field. A seed of 0 is replaced with the current
// wall-clock time so every such field differs.
func New(seed uint64, opts Options) *Field {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if opts.Octaves < 1 {
		opts.Octaves = 1
	}
	if opts.Frequency == 0 {
		opts.Frequency = 1
	}
	if opts.Gain <= 0 {
		opts.Gain = DefaultOptions().Gain
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = DefaultOptions().Lacunarity
	}

	f := &Field{seed: seed, opts: opts}
	// PCG takes the full 64-bit seed; nearby seeds give unrelated tables.
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	p := rng.Perm(tableSize)
	for i := range f.perm {
		f.perm[i] = p[i&(tableSize-1)]
	}
	for i := range f.values {
		f.values[i] = rng.Float64()*2 - 1
	}

	// Normalize the octave sum back into [-1, 1].
	amp, total := 1.0, 0.0
	for i := 0; i < opts.Octaves; i++ {
		total += amp
		amp *= opts.Gain
	}
	f.bounding = 1 / total

	return f
}

// Seed returns the seed the field was built with, after resolving 0.
func (f *Field) Seed() uint64 {
	return f.seed
}

// Sample returns the fractal noise value at (x, y), in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	x *= f.opts.Frequency
	y *= f.opts.Frequency

	sum := 0.0
	amp := 1.0
	for octave := 0; octave < f.opts.Octaves; octave++ {
		sum += f.value(x, y, octave) * amp
		x *= f.opts.Lacunarity
		y *= f.opts.Lacunarity
		amp *= f.opts.Gain
	}
	return sum * f.bounding
}

// value interpolates lattice values around (x, y) for one octave.
func (f *Field) value(x, y float64, octave int) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	x0, y0 := int(fx), int(fy)
	tx, ty := quintic(x-fx), quintic(y-fy)

	v00 := f.lattice(x0, y0, octave)
	v10 := f.lattice(x0+1, y0, octave)
	v01 := f.lattice(x0, y0+1, octave)
	v11 := f.lattice(x0+1, y0+1, octave)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	return lerp(top, bottom, ty)
}

func (f *Field) lattice(x, y, octave int) float64 {
	h := f.perm[octave&(tableSize-1)]
	h = f.perm[(h+x)&(tableSize-1)]
	h = f.perm[(h+y)&(tableSize-1)]
	return f.values[h]
}

func quintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
