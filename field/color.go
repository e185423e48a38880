package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with each channel in [0, 1]. Channel values may
// exceed 1 after intensity scaling; Hex and the snapshot path clamp for display.
type Color struct {
	R float64
	G float64
	B float64
}

// ColorStop pairs a color with its normalized position along the gradient ramp.
type ColorStop struct {
	// Position is the stop's location in [0, 1] along the feathered distance axis.
	Position float64

	// Color is the linear RGB color at this position.
	Color Color
}

// ParseHexColor parses a 6-hex-digit color string of the form "#RRGGBB" (the
// leading '#' is optional) into a Color with channels normalized to [0, 1]
// by dividing each 8-bit channel by 255.
//
// Parameters:
//   - s: the hex color string to parse
//
// Returns:
//   - Color: the parsed color
//   - error: an error wrapping ErrInvalidGradientConfig if the string is malformed
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: hex color %q must have exactly 6 hex digits", ErrInvalidGradientConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidGradientConfig, s, err)
	}
	return Color{
		R: float64(v>>16&0xFF) / 255.0,
		G: float64(v>>8&0xFF) / 255.0,
		B: float64(v&0xFF) / 255.0,
	}, nil
}

// MustParseHexColor is ParseHexColor for compile-time-known color strings.
// Panics on a malformed string, so it is only suitable for package constants
// and presets.
//
// Parameters:
//   - s: the hex color string to parse
//
// Returns:
//   - Color: the parsed color
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex encodes the color back to a "#RRGGBB" string. Channels are clamped to
// [0, 1] and rounded to the nearest 8-bit value, so parsing then re-encoding
// an in-range hex color reproduces the original bytes exactly.
//
// Returns:
//   - string: the "#RRGGBB" encoding of the color
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(math.Round(v * 255.0))
}
