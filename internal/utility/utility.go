package utility

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts "#rrggbb" (or "rrggbb") into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("parsing color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHexColor is ParseHexColor for package-level constants.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
