package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0); got != 2 {
		t.Fatalf("Lerp t=0 = %v, want 2", got)
	}
	if got := Lerp(2, 6, 1); got != 6 {
		t.Fatalf("Lerp t=1 = %v, want 6", got)
	}
	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Fatalf("Lerp t=0.5 = %v, want 4", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -0.5); got != 0 {
		t.Fatalf("below edge0 = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 1.5); got != 1 {
		t.Fatalf("above edge1 = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Fatalf("midpoint = %v, want 0.5", got)
	}
	// Wider edges rescale the input before the Hermite curve.
	if got := Smoothstep(0, 2, 1); got != 0.5 {
		t.Fatalf("midpoint of [0, 2] = %v, want 0.5", got)
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 9
	}
	Identity(m)
	for i, v := range m {
		want := float32(0)
		if i == 0 || i == 5 || i == 10 || i == 15 {
			want = 1
		}
		if v != want {
			t.Fatalf("m[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestOrthoMapsCorners(t *testing.T) {
	m := make([]float32, 16)
	Ortho(m, -2, 2, -1, 1, -1, 1)

	// Column-major multiply of (x, y, z, 1).
	transform := func(x, y, z float32) (float32, float32, float32) {
		tx := m[0]*x + m[4]*y + m[8]*z + m[12]
		ty := m[1]*x + m[5]*y + m[9]*z + m[13]
		tz := m[2]*x + m[6]*y + m[10]*z + m[14]
		return tx, ty, tz
	}

	x, y, _ := transform(2, 1, 0)
	if math.Abs(float64(x-1)) > 1e-6 || math.Abs(float64(y-1)) > 1e-6 {
		t.Fatalf("top-right corner maps to (%v, %v), want (1, 1)", x, y)
	}
	x, y, _ = transform(-2, -1, 0)
	if math.Abs(float64(x+1)) > 1e-6 || math.Abs(float64(y+1)) > 1e-6 {
		t.Fatalf("bottom-left corner maps to (%v, %v), want (-1, -1)", x, y)
	}

	// WebGPU depth range: the near plane maps to 0, the far plane to 1.
	// With near=-1 and far=1 the camera-space planes sit at z=1 and z=-1.
	_, _, z := transform(0, 0, 1)
	if math.Abs(float64(z)) > 1e-6 {
		t.Fatalf("near plane maps to depth %v, want 0", z)
	}
	_, _, z = transform(0, 0, -1)
	if math.Abs(float64(z-1)) > 1e-6 {
		t.Fatalf("far plane maps to depth %v, want 1", z)
	}
}
