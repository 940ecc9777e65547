package gamedata

import (
	"fmt"
	"strings"

	"github.com/samdwyer/brogue/internal/color"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a color.RGB.
func ParseHexColor(hex string) (color.RGB, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return color.RGB{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := color.FromHex(trimmed)
	if err != nil {
		return color.RGB{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return c, nil
}

