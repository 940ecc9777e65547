package world

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/samdwyer/brogue/internal/color"
	"github.com/samdwyer/brogue/internal/gamedata"
	"github.com/samdwyer/brogue/internal/noise"
)

func TestMapGenerateShape(t *testing.T) {
	m := NewMap(10, 10, 7, 225)
	if m.State() != MapEmpty {
		t.Fatalf("new map state = %v, want empty", m.State())
	}

	m.Generate(context.Background(), 7)

	if m.State() != MapGenerated {
		t.Fatalf("state after Generate = %v, want generated", m.State())
	}
	if m.Rows() != 10 || m.Cols() != 10 {
		t.Fatalf("grid is %dx%d, want 10x10", m.Cols(), m.Rows())
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := m.Cell(x, y)
			if c.Bg != color.Black {
				t.Errorf("cell (%d,%d) background = %v, want black", x, y, c.Bg)
			}
			if c.Glyph != '█' {
				t.Errorf("cell (%d,%d) glyph = %q, want '█'", x, y, c.Glyph)
			}
			if c.X != x || c.Y != y {
				t.Errorf("cell (%d,%d) reports position (%d,%d)", x, y, c.X, c.Y)
			}
		}
	}
}

func TestMapGenerateNonSquare(t *testing.T) {
	m := NewMap(DefaultWidth, DefaultHeight, 1, 225)
	m.Generate(context.Background(), 1)

	if m.Rows() != DefaultHeight || m.Cols() != DefaultWidth {
		t.Fatalf("grid is %dx%d, want %dx%d", m.Cols(), m.Rows(), DefaultWidth, DefaultHeight)
	}
	// Last cell is reachable; one past it is not.
	_ = m.Cell(DefaultWidth-1, DefaultHeight-1)
}

func TestMapReproducibility(t *testing.T) {
	m := NewMap(10, 10, 42, 225)
	ctx := context.Background()

	m.Generate(ctx, 42)
	first := snapshot(m)
	m.Generate(ctx, 42)
	second := snapshot(m)

	for y := range first {
		for x := range first[y] {
			if first[y][x] != second[y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, first[y][x], second[y][x])
			}
		}
	}
}

func TestMapDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	m1 := NewMap(20, 20, 0, 225)
	m2 := NewMap(20, 20, 0, 225)
	m1.Generate(ctx, 12345)
	m2.Generate(ctx, 54321)

	if gridsEqual(snapshot(m1), snapshot(m2)) {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestMapTimeSeededRegeneration(t *testing.T) {
	m := NewMap(10, 10, 42, 225)
	ctx := context.Background()

	m.Generate(ctx, 0)
	first := snapshot(m)
	m.Generate(ctx, 0)
	second := snapshot(m)

	if gridsEqual(first, second) {
		t.Error("two time-seeded generations produced identical grids")
	}
	if m.Seed != 42 {
		t.Errorf("stored seed changed to %d, want 42", m.Seed)
	}
}

func TestMapColorsAreTerrainRamps(t *testing.T) {
	m := NewMap(DefaultWidth, DefaultHeight, 3, 225)
	m.Generate(context.Background(), 3)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fg := m.Cell(x, y).Fg
			// Land ramps keep red below green; water ramps have no red at all.
			if fg.R > fg.G && fg.R > 0 {
				t.Fatalf("cell (%d,%d) color %s is on neither ramp", x, y, fg.Hex())
			}
		}
	}
}

// paintByHand recomputes a tile color straight from the noise value with the
// literal palette: green base, pulled from deep blue, then the land or water ramp.
func paintByHand(raw float64) (color.RGB, bool) {
	n := (raw + 1) / 2
	base := color.FromU8(0, color.SaturateU8(n*225), 0)
	tint := color.LerpEased(color.FromU8(0, 48, 255), base, n*1.3)
	if tint.G >= tint.B {
		return color.LerpEased(color.FromU8(16, 48, 0), color.FromU8(48, 200, 8), n*0.8), true
	}
	return color.LerpEased(color.FromU8(0, 64, 200), color.FromU8(0, 0, 48), n*0.8), false
}

func TestMapColorsFollowPalette(t *testing.T) {
	const seed = 42
	m := NewMap(30, 20, seed, 225)
	m.Generate(context.Background(), seed)

	field := noise.New(seed, noise.DefaultOptions())
	var land, water int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			want, isLand := paintByHand(field.Sample(float64(x)/15, float64(y)/15))
			if isLand {
				land++
			} else {
				water++
			}
			if got := m.Cell(x, y).Fg; !approxEqual(got, want) {
				t.Fatalf("cell (%d,%d) = %s, want %s", x, y, got.Hex(), want.Hex())
			}
		}
	}
	if land == 0 || water == 0 {
		t.Errorf("expected both terrains on a 30x20 map, got %d land and %d water", land, water)
	}
}

func TestShade(t *testing.T) {
	terrain := gamedata.MustLoadTerrain()
	landFrom, landTo := color.FromU8(16, 48, 0), color.FromU8(48, 200, 8)
	waterFrom := color.FromU8(0, 64, 200)

	tests := []struct {
		name     string
		n        float64
		wantLand bool
		want     color.RGB
	}{
		{"zero noise is deep water", 0, false, waterFrom},
		{"high noise is land", 0.9, true, color.LerpEased(landFrom, landTo, 0.9*0.8)},
		{"full noise is land", 1, true, color.LerpEased(landFrom, landTo, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isLand := shade(terrain, tt.n, 225)
			if isLand != tt.wantLand {
				t.Errorf("shade(%v) land = %v, want %v", tt.n, isLand, tt.wantLand)
			}
			if !approxEqual(got, tt.want) {
				t.Errorf("shade(%v) = %s, want %s", tt.n, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestBaseTintSaturatesAtBase(t *testing.T) {
	terrain := gamedata.MustLoadTerrain()

	// 0.9 * 1.3 > 1, so the blend lands exactly on the green base.
	got := baseTint(terrain, 0.9, 225)
	want := color.FromU8(0, color.SaturateU8(0.9*225), 0)
	if got != want {
		t.Errorf("baseTint(0.9) = %s, want base %s", got.Hex(), want.Hex())
	}

	// At zero the tint is the reference blue untouched.
	if got := baseTint(terrain, 0, 225); !approxEqual(got, color.FromU8(0, 48, 255)) {
		t.Errorf("baseTint(0) = %s, want #0030ff", got.Hex())
	}
}

func TestMapCellPanics(t *testing.T) {
	tests := []struct {
		name     string
		generate bool
		x, y     int
		contains string
	}{
		{"before generate", false, 0, 0, "before map was generated"},
		{"negative x", true, -1, 0, "x index"},
		{"x past width", true, 10, 0, "x index"},
		{"negative y", true, 0, -1, "y index"},
		{"y past height", true, 0, 10, "y index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMap(10, 10, 1, 225)
			if tt.generate {
				m.Generate(context.Background(), 1)
			}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Cell(%d, %d) did not panic", tt.x, tt.y)
				}
				msg, _ := r.(string)
				if !strings.Contains(msg, tt.contains) {
					t.Errorf("panic message %q does not mention %q", msg, tt.contains)
				}
			}()
			m.Cell(tt.x, tt.y)
		})
	}
}

func TestMapStateString(t *testing.T) {
	tests := []struct {
		state    MapState
		expected string
	}{
		{MapEmpty, "empty"},
		{MapGenerated, "generated"},
		{MapState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("MapState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func snapshot(m *Map) [][]color.RGB {
	out := make([][]color.RGB, m.Height)
	for y := range out {
		out[y] = make([]color.RGB, m.Width)
		for x := range out[y] {
			out[y][x] = m.Cell(x, y).Fg
		}
	}
	return out
}

func gridsEqual(a, b [][]color.RGB) bool {
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func approxEqual(a, b color.RGB) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}
