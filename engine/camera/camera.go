package camera

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/timf34/JamesTurrellDigitalArt/common"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/bind_group_provider"
)

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

type cameraImpl struct {
	mu *sync.Mutex

	aspect float32
	near   float32
	far    float32

	viewProjectionMatrix [16]float32

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera defines the interface for the orthographic view onto the gradient plane.
// The camera maps a view volume of [-aspect, aspect] horizontally and [-1, 1]
// vertically onto the full surface, so a quad sized to those bounds always fills
// the viewport regardless of window shape. SetViewport recomputes the projection
// from new pixel dimensions on resize.
type Camera interface {
	// Aspect returns the current aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Bounds returns the horizontal and vertical half-extents of the view volume.
	// The visible region spans [-halfWidth, halfWidth] x [-halfHeight, halfHeight].
	//
	// Returns:
	//   - halfWidth: horizontal half-extent (equal to the aspect ratio)
	//   - halfHeight: vertical half-extent (always 1)
	Bounds() (halfWidth, halfHeight float32)

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	// Returns nil if not set.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetViewport recomputes the projection from the given surface dimensions in pixels.
	// Called on startup and whenever the window is resized. Dimensions of zero or less
	// are ignored so minimized windows do not produce a degenerate projection.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	SetViewport(width, height int)

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new orthographic Camera with default settings.
// The default projection assumes a square viewport until SetViewport is called
// with real surface dimensions.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		aspect: 1.0,
		near:   0.0,
		far:    1.0,
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	cameraCount.Add(1)
	return c
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Bounds() (halfWidth, halfHeight float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect, 1.0
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = float32(width) / float32(height)
	c.updateMatrices()
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindGroupProvider
}

func (c *cameraImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindGroupProvider = provider
}

// updateMatrices recalculates the orthographic view-projection matrix.
// The view is the identity (the plane sits at the origin facing the camera),
// so the view-projection is the orthographic projection alone.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.Ortho(c.viewProjectionMatrix[:],
		-c.aspect, c.aspect,
		-1.0, 1.0,
		c.near, c.far,
	)
}
