package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit colour used by draw calls.
type Color struct {
	R, G, B uint8
}

// Predefined colours for the arena.
var (
	ColorBlack = Color{0x00, 0x00, 0x00}
	ColorWhite = Color{0xff, 0xff, 0xff}
	ColorDemon = Color{0xd2, 0x45, 0x45}
	ColorBean  = Color{0xe1, 0xd3, 0xa9}
	ColorZone  = Color{0xd1, 0xe6, 0xe8}
)

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToRGBA converts to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
