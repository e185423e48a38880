package field

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func colorsClose(a, b Color) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestDistanceEllipse(t *testing.T) {
	if d := Distance(3, 4, DistanceModeEllipse, 0); math.Abs(d-5) > eps {
		t.Fatalf("Distance(3, 4) = %v, want 5", d)
	}
	if d := Distance(0, 0, DistanceModeEllipse, 0); d != 0 {
		t.Fatalf("Distance at origin = %v, want 0", d)
	}
	// RectBlend is ignored in ellipse mode.
	if d := Distance(3, 4, DistanceModeEllipse, 1); math.Abs(d-5) > eps {
		t.Fatalf("ellipse distance with rectBlend set = %v, want 5", d)
	}
}

func TestDistanceRoundedRect(t *testing.T) {
	euclid := math.Sqrt(3*3 + 4*4)
	chebyshev := 4.0

	if d := Distance(3, 4, DistanceModeRoundedRect, 0); math.Abs(d-euclid) > eps {
		t.Fatalf("blend 0 = %v, want euclidean %v", d, euclid)
	}
	if d := Distance(3, 4, DistanceModeRoundedRect, 1); math.Abs(d-chebyshev) > eps {
		t.Fatalf("blend 1 = %v, want chebyshev %v", d, chebyshev)
	}
	mid := (euclid + chebyshev) / 2
	if d := Distance(3, 4, DistanceModeRoundedRect, 0.5); math.Abs(d-mid) > eps {
		t.Fatalf("blend 0.5 = %v, want %v", d, mid)
	}
	// Chebyshev uses absolute components.
	if d := Distance(-3, -4, DistanceModeRoundedRect, 1); math.Abs(d-chebyshev) > eps {
		t.Fatalf("blend 1 with negative offsets = %v, want %v", d, chebyshev)
	}
}

func TestLookupColor(t *testing.T) {
	stops := []ColorStop{
		{Position: 0.2, Color: Color{R: 1}},
		{Position: 0.6, Color: Color{B: 1}},
	}

	tests := []struct {
		name string
		d    float64
		want Color
	}{
		{"below first stop clamps", 0.0, Color{R: 1}},
		{"at first stop", 0.2, Color{R: 1}},
		{"midpoint interpolates", 0.4, Color{R: 0.5, B: 0.5}},
		{"at last stop", 0.6, Color{B: 1}},
		{"above last stop clamps", 1.0, Color{B: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupColor(stops, tt.d)
			if !colorsClose(got, tt.want) {
				t.Fatalf("LookupColor(%v) = %+v, want %+v", tt.d, got, tt.want)
			}
		})
	}
}

func TestLookupColorExactStopPositions(t *testing.T) {
	stops, err := Preset("peach")
	if err != nil {
		t.Fatal(err)
	}
	for i, stop := range stops {
		got := LookupColor(stops, stop.Position)
		if !colorsClose(got, stop.Color) {
			t.Fatalf("stop %d: LookupColor(%v) = %+v, want %+v", i, stop.Position, got, stop.Color)
		}
	}
}

func TestLookupColorEmptyStops(t *testing.T) {
	if got := LookupColor(nil, 0.5); !colorsClose(got, Color{}) {
		t.Fatalf("empty stops should produce black, got %+v", got)
	}
}

func TestValidateStops(t *testing.T) {
	valid := []ColorStop{
		{Position: 0, Color: Color{R: 1}},
		{Position: 1, Color: Color{B: 1}},
	}
	if err := ValidateStops(valid); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stops []ColorStop
	}{
		{"no stops", nil},
		{"single stop", []ColorStop{{Position: 0.5}}},
		{"too many stops", make([]ColorStop, maxStops+1)},
		{"position below range", []ColorStop{{Position: -0.1}, {Position: 1}}},
		{"position above range", []ColorStop{{Position: 0}, {Position: 1.1}}},
		{"descending positions", []ColorStop{{Position: 0.6}, {Position: 0.2}}},
		{"duplicate positions", []ColorStop{{Position: 0.5}, {Position: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStops(tt.stops)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidGradientConfig) {
				t.Fatalf("error should wrap ErrInvalidGradientConfig, got %v", err)
			}
		})
	}
}

func TestValidateStopsMaxCount(t *testing.T) {
	stops := make([]ColorStop, maxStops)
	for i := range stops {
		stops[i] = ColorStop{Position: float64(i) / float64(maxStops-1)}
	}
	if err := ValidateStops(stops); err != nil {
		t.Fatalf("%d ascending stops should validate: %v", maxStops, err)
	}
}

func TestEvaluateUVCenter(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}

	// At the exact center the distance is zero, so the result is the first
	// stop's color scaled by intensity.
	got := EvaluateUV(0.5, 0.5, shape, stops)
	want := Color{
		R: stops[0].Color.R * shape.Intensity,
		G: stops[0].Color.G * shape.Intensity,
		B: stops[0].Color.B * shape.Intensity,
	}
	if !colorsClose(got, want) {
		t.Fatalf("EvaluateUV(center) = %+v, want %+v", got, want)
	}
}

func TestEvaluateUVIntensityScales(t *testing.T) {
	stops, err := Preset("teal")
	if err != nil {
		t.Fatal(err)
	}

	dim := DefaultShapeConfig()
	dim.Intensity = 1.0
	bright := dim
	bright.Intensity = 2.0

	a := EvaluateUV(0.3, 0.7, dim, stops)
	b := EvaluateUV(0.3, 0.7, bright, stops)
	want := Color{R: a.R * 2, G: a.G * 2, B: a.B * 2}
	if !colorsClose(b, want) {
		t.Fatalf("doubling intensity: got %+v, want %+v", b, want)
	}
}

func TestEvaluateUVSymmetric(t *testing.T) {
	shape := DefaultShapeConfig()
	stops, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}

	// The distance functions are even in both axes, so mirrored coordinates
	// shade identically.
	left := EvaluateUV(0.2, 0.35, shape, stops)
	right := EvaluateUV(0.8, 0.65, shape, stops)
	if !colorsClose(left, right) {
		t.Fatalf("mirrored coordinates differ: %+v vs %+v", left, right)
	}
}

func TestEvaluateUVFeatherWidensCore(t *testing.T) {
	stops := []ColorStop{
		{Position: 0, Color: Color{R: 1, G: 1, B: 1}},
		{Position: 1, Color: Color{}},
	}

	tight := DefaultShapeConfig()
	tight.Intensity = 1.0
	tight.Feather = 0.1
	soft := tight
	soft.Feather = 1.0

	// A larger feather raises the smoothstep upper edge, so the same offset
	// sits earlier on the ramp and shades brighter.
	a := EvaluateUV(0.7, 0.5, tight, stops)
	b := EvaluateUV(0.7, 0.5, soft, stops)
	if b.R <= a.R {
		t.Fatalf("larger feather should brighten the falloff: %v vs %v", b.R, a.R)
	}
}
