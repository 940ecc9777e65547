package game

import (
	"time"

	"github.com/samdwyer/brogue/internal/world"
)

// Config holds game configuration options.
type Config struct {
	Width  int // Map and viewport width in cells
	Height int // Map and viewport height in cells

	// FPSCap is the requested frame rate. Frames may arrive slower.
	FPSCap int

	// InitialSeed seeds the first map. A seed of 0 means a time-derived seed.
	// Regenerating in game always uses a time-derived seed.
	InitialSeed uint64

	Title string
}

// DefaultConfig returns an 80x45 map at 60 FPS.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		FPSCap:      60,
		InitialSeed: 1,
		Title:       "BROGUE",
	}
}

// frameInterval is the ticker period for the configured FPS cap.
func (c Config) frameInterval() time.Duration {
	if c.FPSCap <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPSCap)
}
