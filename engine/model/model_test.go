package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNewFullscreenQuadGeometry(t *testing.T) {
	m := NewFullscreenQuad(WithHalfExtents(1.5, 1.0))

	vertices := m.Vertices()
	if len(vertices) != 4 {
		t.Fatalf("vertex count = %d, want 4", len(vertices))
	}
	indices := m.Indices()
	if len(indices) != 6 || m.IndexCount() != 6 {
		t.Fatalf("index count = %d/%d, want 6", len(indices), m.IndexCount())
	}

	// Corners must sit exactly on the view volume bounds.
	for _, v := range vertices {
		if math.Abs(float64(v.Position[0])) != 1.5 || math.Abs(float64(v.Position[1])) != 1.0 {
			t.Fatalf("vertex %v off the quad corners", v.Position)
		}
		if v.Position[2] != 0 {
			t.Fatalf("quad vertex has depth %v, want 0", v.Position[2])
		}
	}

	// UVs span [0, 1] with (0, 0) at the top-left corner.
	for _, v := range vertices {
		wantU := float32(0)
		if v.Position[0] > 0 {
			wantU = 1
		}
		wantV := float32(0)
		if v.Position[1] < 0 {
			wantV = 1
		}
		if v.TexCoord[0] != wantU || v.TexCoord[1] != wantV {
			t.Fatalf("vertex at %v has UV %v, want (%v, %v)", v.Position, v.TexCoord, wantU, wantV)
		}
	}
}

func TestQuadWindingCounterClockwise(t *testing.T) {
	m := NewFullscreenQuad()
	vertices := m.Vertices()
	indices := m.Indices()

	// Both triangles must wind counter-clockwise in clip space (positive
	// signed area) to survive front-face culling.
	for tri := 0; tri < len(indices); tri += 3 {
		a := vertices[indices[tri]].Position
		b := vertices[indices[tri+1]].Position
		c := vertices[indices[tri+2]].Position
		area := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if area <= 0 {
			t.Fatalf("triangle %d winds clockwise (signed area %v)", tri/3, area)
		}
	}
}

func TestQuadResize(t *testing.T) {
	m := NewFullscreenQuad(WithHalfExtents(1.0, 1.0))
	m.Resize(2.5, 1.0)

	if m.HalfWidth() != 2.5 || m.HalfHeight() != 1.0 {
		t.Fatalf("extents after resize = (%v, %v), want (2.5, 1)", m.HalfWidth(), m.HalfHeight())
	}
	for _, v := range m.Vertices() {
		if math.Abs(float64(v.Position[0])) != 2.5 {
			t.Fatalf("vertex %v not rebuilt for new extents", v.Position)
		}
	}

	// Degenerate extents leave the mesh untouched.
	m.Resize(0, 1)
	m.Resize(-1, -1)
	if m.HalfWidth() != 2.5 {
		t.Fatalf("degenerate resize changed extents to %v", m.HalfWidth())
	}
}

func TestVertexMarshalLayout(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, TexCoord: [2]float32{0.25, 0.75}}
	if v.Size() != 20 {
		t.Fatalf("GPUVertex size = %d, want 20", v.Size())
	}

	buf := v.Marshal()
	if len(buf) != 20 {
		t.Fatalf("marshaled length = %d, want 20", len(buf))
	}
	want := []float32{1, 2, 3, 0.25, 0.75}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Fatalf("field %d = %v, want %v", i, got, w)
		}
	}
}

func TestMarshalBuffers(t *testing.T) {
	m := NewFullscreenQuad()

	vb := m.VertexData()
	if len(vb) != 4*20 {
		t.Fatalf("vertex buffer length = %d, want 80", len(vb))
	}
	ib := m.IndexData()
	if len(ib) != 6*4 {
		t.Fatalf("index buffer length = %d, want 24", len(ib))
	}
	for i, idx := range m.Indices() {
		if got := binary.LittleEndian.Uint32(ib[i*4:]); got != idx {
			t.Fatalf("index %d = %d, want %d", i, got, idx)
		}
	}
}
