package field

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderImageDimensions(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}

	img, err := RenderImage(shape, stops, 16, 9, 2)
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 9 {
		t.Fatalf("image bounds %v, want 16x9", bounds)
	}
}

func TestRenderImageMatchesEvaluator(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset("ember")
	if err != nil {
		t.Fatal(err)
	}

	const w, h = 8, 8
	img, err := RenderImage(shape, stops, w, h, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Every pixel samples the shading function at its center, clamped to
	// 8 bits for display.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / w
			v := (float64(y) + 0.5) / h
			want := EvaluateUV(u, v, shape, stops)
			got := img.RGBAAt(x, y)
			if got.R != channelByte(want.R) || got.G != channelByte(want.G) || got.B != channelByte(want.B) {
				t.Fatalf("pixel (%d, %d) = %v, want clamped %+v", x, y, got, want)
			}
			if got.A != 255 {
				t.Fatalf("pixel (%d, %d) alpha = %d, want 255", x, y, got.A)
			}
		}
	}
}

func TestRenderImageInvalidInputs(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		render func() error
	}{
		{"zero width", func() error { _, err := RenderImage(shape, stops, 0, 10, 1); return err }},
		{"negative height", func() error { _, err := RenderImage(shape, stops, 10, -1, 1); return err }},
		{"too few stops", func() error { _, err := RenderImage(shape, stops[:1], 10, 10, 1); return err }},
		{"bad shape", func() error {
			bad := shape
			bad.Intensity = 0
			_, err := RenderImage(bad, stops, 10, 10, 1)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.render()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidGradientConfig) {
				t.Fatalf("error should wrap ErrInvalidGradientConfig, got %v", err)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset("dusk")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "field.png")
	if err := SavePNG(path, shape, stops, 32, 18, 2); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 18 {
		t.Fatalf("decoded bounds %v, want 32x18", img.Bounds())
	}
}
