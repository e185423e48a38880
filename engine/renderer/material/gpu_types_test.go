package material

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUShapeParamsMarshal(t *testing.T) {
	p := GPUShapeParams{
		AspectRatio:     0.5,
		VerticalStretch: 0.6,
		HorizontalWidth: 0.4,
		Feather:         0.4,
		Intensity:       1.2,
		RectBlend:       0.3,
		DistanceMode:    DistanceModeRoundedRect,
		StopCount:       3,
	}
	if p.Size() != 32 {
		t.Fatalf("GPUShapeParams size = %d, want 32", p.Size())
	}

	buf := p.Marshal()
	if len(buf) != 32 {
		t.Fatalf("marshaled length = %d, want 32", len(buf))
	}

	floatAt := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	wantFloats := []struct {
		offset int
		value  float32
	}{
		{0, 0.5}, {4, 0.6}, {8, 0.4}, {12, 0.4}, {16, 1.2}, {20, 0.3},
	}
	for _, w := range wantFloats {
		if got := floatAt(w.offset); got != w.value {
			t.Fatalf("offset %d = %v, want %v", w.offset, got, w.value)
		}
	}
	if got := binary.LittleEndian.Uint32(buf[24:]); got != DistanceModeRoundedRect {
		t.Fatalf("distance mode at offset 24 = %d, want %d", got, DistanceModeRoundedRect)
	}
	if got := binary.LittleEndian.Uint32(buf[28:]); got != 3 {
		t.Fatalf("stop count at offset 28 = %d, want 3", got)
	}
}

func TestGPUGradientStopsMarshal(t *testing.T) {
	var g GPUGradientStops
	g.Stops[0] = [4]float32{0.1, 0.2, 0.3, 0}
	g.Stops[7] = [4]float32{0.7, 0.8, 0.9, 1}

	if g.Size() != 128 {
		t.Fatalf("GPUGradientStops size = %d, want 128", g.Size())
	}

	buf := g.Marshal()
	if len(buf) != 128 {
		t.Fatalf("marshaled length = %d, want 128", len(buf))
	}

	floatAt := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	// First slot at offset 0, last slot at offset 112, 16 bytes per vec4.
	for j, want := range []float32{0.1, 0.2, 0.3, 0} {
		if got := floatAt(j * 4); got != want {
			t.Fatalf("stop 0 component %d = %v, want %v", j, got, want)
		}
	}
	for j, want := range []float32{0.7, 0.8, 0.9, 1} {
		if got := floatAt(112 + j*4); got != want {
			t.Fatalf("stop 7 component %d = %v, want %v", j, got, want)
		}
	}
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	params := m.ShapeParams()
	if params.StopCount < 2 || params.StopCount > MaxGradientStops {
		t.Fatalf("default stop count %d outside [2, %d]", params.StopCount, MaxGradientStops)
	}
	if params.DistanceMode != DistanceModeEllipse {
		t.Fatalf("default distance mode = %d, want ellipse", params.DistanceMode)
	}
}

func TestMaterialSettersRoundTrip(t *testing.T) {
	m := NewMaterial(WithPipelineKey("gradient_field"))
	if m.PipelineKey() != "gradient_field" {
		t.Fatalf("pipeline key = %q", m.PipelineKey())
	}

	next := GPUShapeParams{AspectRatio: 2, VerticalStretch: 1, HorizontalWidth: 1, Feather: 0.5, Intensity: 1, StopCount: 2}
	m.SetShapeParams(next)
	if m.ShapeParams() != next {
		t.Fatalf("shape params round trip: %+v", m.ShapeParams())
	}

	var stops GPUGradientStops
	stops.Stops[1] = [4]float32{1, 0, 0, 1}
	m.SetGradientStops(stops)
	if m.GradientStops() != stops {
		t.Fatalf("gradient stops round trip: %+v", m.GradientStops())
	}
}
