package model

import (
	"sync"
)

// model is the implementation of the Model interface.
type model struct {
	mu *sync.Mutex

	name       string
	halfWidth  float32
	halfHeight float32

	vertices []GPUVertex
	indices  []uint32
}

// Model defines the interface for the viewport-filling quad mesh. The quad spans
// [-halfWidth, halfWidth] x [-halfHeight, halfHeight] in world space with UV
// coordinates covering [0, 1] in both axes, so the fragment shader receives a
// normalized screen position regardless of window shape. Resize rebuilds the
// mesh when the surface aspect ratio changes.
type Model interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// HalfWidth returns the quad's horizontal half-extent in world space.
	//
	// Returns:
	//   - float32: the horizontal half-extent
	HalfWidth() float32

	// HalfHeight returns the quad's vertical half-extent in world space.
	//
	// Returns:
	//   - float32: the vertical half-extent
	HalfHeight() float32

	// Vertices returns the quad's vertex data. The returned slice is a copy and
	// safe to retain.
	//
	// Returns:
	//   - []GPUVertex: the four quad vertices
	Vertices() []GPUVertex

	// Indices returns the quad's triangle indices (two counter-clockwise triangles).
	//
	// Returns:
	//   - []uint32: the six triangle indices
	Indices() []uint32

	// VertexData returns the packed vertex bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the serialized vertex data
	VertexData() []byte

	// IndexData returns the packed index bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the serialized index data
	IndexData() []byte

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count (always 6 for a quad)
	IndexCount() int

	// Resize rebuilds the quad for new half-extents. Called when the surface
	// aspect ratio changes so the quad continues to fill the camera's view
	// volume exactly. Non-positive extents are ignored.
	//
	// Parameters:
	//   - halfWidth: the new horizontal half-extent
	//   - halfHeight: the new vertical half-extent
	Resize(halfWidth, halfHeight float32)
}

var _ Model = &model{}

// NewFullscreenQuad creates a quad mesh sized to fill an orthographic view volume
// of [-halfWidth, halfWidth] x [-halfHeight, halfHeight]. UVs run left to right
// and top to bottom: the top-left corner carries (0, 0), the bottom-right (1, 1).
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Model: the configured quad mesh
func NewFullscreenQuad(options ...ModelBuilderOption) Model {
	m := &model{
		mu:         &sync.Mutex{},
		name:       "fullscreen_quad",
		halfWidth:  1.0,
		halfHeight: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	m.rebuild()
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) HalfWidth() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.halfWidth
}

func (m *model) HalfHeight() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.halfHeight
}

func (m *model) Vertices() []GPUVertex {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GPUVertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *model) Indices() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint32, len(m.indices))
	copy(out, m.indices)
	return out
}

func (m *model) VertexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.indices)
}

func (m *model) Resize(halfWidth, halfHeight float32) {
	if halfWidth <= 0 || halfHeight <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.halfWidth = halfWidth
	m.halfHeight = halfHeight
	m.rebuild()
}

// rebuild regenerates the four corner vertices and two triangles for the current
// half-extents. Caller must hold the mutex (or be the constructor).
func (m *model) rebuild() {
	hw := m.halfWidth
	hh := m.halfHeight
	m.vertices = []GPUVertex{
		{Position: [3]float32{-hw, hh, 0}, TexCoord: [2]float32{0, 0}},  // top-left
		{Position: [3]float32{hw, hh, 0}, TexCoord: [2]float32{1, 0}},   // top-right
		{Position: [3]float32{hw, -hh, 0}, TexCoord: [2]float32{1, 1}},  // bottom-right
		{Position: [3]float32{-hw, -hh, 0}, TexCoord: [2]float32{0, 1}}, // bottom-left
	}
	m.indices = []uint32{0, 2, 1, 0, 3, 2}
}
