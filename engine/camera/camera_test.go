package camera

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Aspect() != 1.0 {
		t.Fatalf("default aspect = %v, want 1", c.Aspect())
	}
	hw, hh := c.Bounds()
	if hw != 1.0 || hh != 1.0 {
		t.Fatalf("default bounds = (%v, %v), want (1, 1)", hw, hh)
	}
	if c.BindGroupProvider() == nil {
		t.Fatal("camera should create its own bind group provider")
	}
}

func TestSetViewport(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1920, 1080)

	want := float32(1920) / float32(1080)
	if math.Abs(float64(c.Aspect()-want)) > 1e-6 {
		t.Fatalf("aspect = %v, want %v", c.Aspect(), want)
	}
	hw, hh := c.Bounds()
	if hw != c.Aspect() || hh != 1.0 {
		t.Fatalf("bounds = (%v, %v), want (%v, 1)", hw, hh, c.Aspect())
	}
}

func TestSetViewportIgnoresDegenerate(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1280, 720)
	before := c.Aspect()

	c.SetViewport(0, 720)
	c.SetViewport(1280, 0)
	c.SetViewport(-1, -1)

	if c.Aspect() != before {
		t.Fatalf("degenerate viewport changed aspect: %v -> %v", before, c.Aspect())
	}
}

func TestViewProjectionMapsBoundsToClipSpace(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1600, 900)

	m := c.ViewProjectionMatrix()
	hw, hh := c.Bounds()

	// Column-major multiply of (x, y, 0, 1): the view volume corners must land
	// on the clip space corners, which is what keeps the quad viewport-filling.
	transform := func(x, y float32) (float32, float32) {
		tx := m[0]*x + m[4]*y + m[12]
		ty := m[1]*x + m[5]*y + m[13]
		return tx, ty
	}

	x, y := transform(hw, hh)
	if math.Abs(float64(x-1)) > 1e-6 || math.Abs(float64(y-1)) > 1e-6 {
		t.Fatalf("(+hw, +hh) maps to (%v, %v), want (1, 1)", x, y)
	}
	x, y = transform(-hw, -hh)
	if math.Abs(float64(x+1)) > 1e-6 || math.Abs(float64(y+1)) > 1e-6 {
		t.Fatalf("(-hw, -hh) maps to (%v, %v), want (-1, -1)", x, y)
	}
	x, y = transform(0, 0)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)) > 1e-6 {
		t.Fatalf("origin maps to (%v, %v), want (0, 0)", x, y)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	var u GPUCameraUniform
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(i)
	}
	if u.Size() != 64 {
		t.Fatalf("GPUCameraUniform size = %d, want 64", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 64 {
		t.Fatalf("marshaled length = %d, want 64", len(buf))
	}
	for i := range u.ViewProj {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i) {
			t.Fatalf("element %d = %v, want %v", i, got, float32(i))
		}
	}
}

func TestUniqueProviderNames(t *testing.T) {
	a := NewCamera()
	b := NewCamera()
	if a.BindGroupProvider().Label() == b.BindGroupProvider().Label() {
		t.Fatalf("two cameras share provider label %q", a.BindGroupProvider().Label())
	}
}
