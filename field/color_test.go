package field

import (
	"errors"
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"with hash", "#8B6FC3", Color{R: 139.0 / 255.0, G: 111.0 / 255.0, B: 195.0 / 255.0}},
		{"without hash", "8B6FC3", Color{R: 139.0 / 255.0, G: 111.0 / 255.0, B: 195.0 / 255.0}},
		{"lowercase", "#ff00aa", Color{R: 1, G: 0, B: 170.0 / 255.0}},
		{"black", "#000000", Color{}},
		{"white", "#FFFFFF", Color{R: 1, G: 1, B: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.R-tt.want.R) > 1e-12 ||
				math.Abs(got.G-tt.want.G) > 1e-12 ||
				math.Abs(got.B-tt.want.B) > 1e-12 {
				t.Fatalf("ParseHexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#FFF", "#FFFFFFFF", "#GGGGGG", "not a color"} {
		_, err := ParseHexColor(input)
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		if !errors.Is(err, ErrInvalidGradientConfig) {
			t.Fatalf("error for %q should wrap ErrInvalidGradientConfig, got %v", input, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#8B6FC3", "#C3B2E8", "#E8E0F5", "#000000", "#FFFFFF", "#0F7173"} {
		c, err := ParseHexColor(hex)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Hex(); got != hex {
			t.Fatalf("round trip %q -> %q", hex, got)
		}
	}
}

func TestHexClampsOverBright(t *testing.T) {
	c := Color{R: 1.8, G: -0.2, B: 0.5}
	if got := c.Hex(); got != "#FF0080" {
		t.Fatalf("Hex() = %q, want #FF0080", got)
	}
}

func TestMustParseHexColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed hex color")
		}
	}()
	MustParseHexColor("#XYZ")
}
