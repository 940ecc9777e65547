// Package color provides RGB values and the blend functions used to paint terrain.
package color

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with float channels in [0, 1].
type RGB colorful.Color

// Named colors.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 1, G: 1, B: 1}
)

// FromU8 builds a color from 8-bit channels.
func FromU8(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromHex parses "#RRGGBB" (the leading # is optional).
func FromHex(hex string) (RGB, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB(c), nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color(c).Clamped().Hex()
}

// RGB255 returns the color quantized to 8-bit channels.
func (c RGB) RGB255() (r, g, b uint8) {
	return colorful.Color(c).Clamped().RGB255()
}

// TCell converts the color to a 24-bit tcell color.
func (c RGB) TCell() tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SaturateU8 converts v to a byte, saturating at 0 and 255.
func SaturateU8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
