package color

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var (
	deepBlue  = FromU8(0, 48, 255)
	darkGreen = FromU8(16, 48, 0)
)

func approxEqual(a, b RGB) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(deepBlue, darkGreen, 0); !approxEqual(got, deepBlue) {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, deepBlue)
	}
	if got := Lerp(deepBlue, darkGreen, 1); !approxEqual(got, darkGreen) {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, darkGreen)
	}
}

func TestLerpClampsFactor(t *testing.T) {
	tests := []struct {
		t    float64
		want RGB
	}{
		{1.5, darkGreen},
		{42, darkGreen},
		{-0.5, deepBlue},
		{-7, deepBlue},
	}

	for _, tt := range tests {
		if got := Lerp(deepBlue, darkGreen, tt.t); !approxEqual(got, tt.want) {
			t.Errorf("Lerp(a, b, %v) = %v, want %v", tt.t, got, tt.want)
		}
		if got := LerpEased(deepBlue, darkGreen, tt.t); !approxEqual(got, tt.want) {
			t.Errorf("LerpEased(a, b, %v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := Lerp(Black, White, 0.5)
	want := RGB{R: 0.5, G: 0.5, B: 0.5}
	if !approxEqual(got, want) {
		t.Errorf("Lerp(black, white, 0.5) = %v, want %v", got, want)
	}
}

func TestLerpEasedEndpoints(t *testing.T) {
	if got := LerpEased(deepBlue, darkGreen, 0); !approxEqual(got, Lerp(deepBlue, darkGreen, 0)) {
		t.Errorf("LerpEased(a, b, 0) = %v, want %v", got, deepBlue)
	}
	if got := LerpEased(deepBlue, darkGreen, 1); !approxEqual(got, Lerp(deepBlue, darkGreen, 1)) {
		t.Errorf("LerpEased(a, b, 1) = %v, want %v", got, darkGreen)
	}
}

func TestLerpEasedIsNonLinear(t *testing.T) {
	for _, f := range []float64{0.1, 0.25, 0.75, 0.9} {
		linear := Lerp(Black, White, f)
		eased := LerpEased(Black, White, f)
		if approxEqual(linear, eased) {
			t.Errorf("LerpEased at %v matched linear blend %v", f, linear)
		}
	}

	// The quintic passes through (0.5, 0.5).
	if got, want := LerpEased(Black, White, 0.5), Lerp(Black, White, 0.5); !approxEqual(got, want) {
		t.Errorf("LerpEased at 0.5 = %v, want %v", got, want)
	}
}

func TestBlendDispatch(t *testing.T) {
	if got, want := Blend(deepBlue, darkGreen, 0.3, false), Lerp(deepBlue, darkGreen, 0.3); !approxEqual(got, want) {
		t.Errorf("Blend(eased=false) = %v, want %v", got, want)
	}
	if got, want := Blend(deepBlue, darkGreen, 0.3, true), LerpEased(deepBlue, darkGreen, 0.3); !approxEqual(got, want) {
		t.Errorf("Blend(eased=true) = %v, want %v", got, want)
	}
}

func TestLerpDoesNotMutateInputs(t *testing.T) {
	a, b := deepBlue, darkGreen
	_ = LerpEased(a, b, 0.4)
	if a != deepBlue || b != darkGreen {
		t.Error("blend mutated its inputs")
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		valid bool
	}{
		{"#0030FF", deepBlue, true},
		{"103000", darkGreen, true},
		{"#000000", Black, true},
		{"#FFFF", RGB{}, false},
		{"#GG0000", RGB{}, false},
	}

	for _, tt := range tests {
		got, err := FromHex(tt.input)
		if tt.valid && err != nil {
			t.Errorf("FromHex(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !tt.valid {
			if err == nil {
				t.Errorf("FromHex(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if !approxEqual(got, tt.want) {
			t.Errorf("FromHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTCell(t *testing.T) {
	if got, want := FromU8(48, 200, 8).TCell(), tcell.NewRGBColor(48, 200, 8); got != want {
		t.Errorf("TCell() = %v, want %v", got, want)
	}
}

func TestSaturateU8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{112.9, 112},
		{225, 225},
		{300, 255},
	}

	for _, tt := range tests {
		if got := SaturateU8(tt.in); got != tt.want {
			t.Errorf("SaturateU8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
