package field

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/timf34/JamesTurrellDigitalArt/engine/camera"
	"github.com/timf34/JamesTurrellDigitalArt/engine/model"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer"
	bgp "github.com/timf34/JamesTurrellDigitalArt/engine/renderer/bind_group_provider"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/material"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/shader"
	"github.com/timf34/JamesTurrellDigitalArt/engine/scene"
	"github.com/timf34/JamesTurrellDigitalArt/engine/window"
)

// maxStops is the public stop-count ceiling, bounded by the GPU uniform array.
const maxStops = material.MaxGradientStops

// fieldVertexSource is the field's vertex shader: quad positions through the
// orthographic camera, UVs passed through.
//
//go:embed assets/field_vert.wgsl
var fieldVertexSource string

// fieldFragmentSource is the gradient shading function. The CPU reference
// evaluator in gradient.go mirrors it step for step.
//
//go:embed assets/field_frag.wgsl
var fieldFragmentSource string

// controller is the implementation of the Controller interface.
type controller struct {
	mu *sync.RWMutex

	shape ShapeConfig
	stops []ColorStop

	scn scene.Scene
	mat material.Material

	snapshotWorkers int
}

// Controller owns the gradient state (color stops + shape parameters) and the
// scene that renders it. All mutation goes through UpdateColors, UpdateShape,
// and ApplyPreset; every accepted update is pushed to the material so it is
// visible on the next rendered frame, with no transition.
// Thread-safe for concurrent access.
type Controller interface {
	// Scene returns the scene rendering the field. Register it with the engine
	// to draw the field and receive resize fan-out.
	//
	// Returns:
	//   - scene.Scene: the field's scene
	Scene() scene.Scene

	// Shape returns the current immutable shape configuration.
	//
	// Returns:
	//   - ShapeConfig: the current shape parameters
	Shape() ShapeConfig

	// Colors returns a copy of the current color stop sequence.
	//
	// Returns:
	//   - []ColorStop: the current stops
	Colors() []ColorStop

	// UpdateColors replaces the entire color stop sequence and rebuilds the
	// stops uniform from scratch. The previous stops are kept untouched if
	// validation fails.
	//
	// Parameters:
	//   - stops: the new stop sequence (2 to 8 stops, strictly ascending positions in [0, 1])
	//
	// Returns:
	//   - error: an error wrapping ErrInvalidGradientConfig, or nil
	UpdateColors(stops []ColorStop) error

	// UpdateShape applies a partial shape update: non-nil patch fields overwrite
	// the stored configuration, everything else is left untouched, and the shape
	// uniform is staged in a single write. The previous configuration is kept if
	// the patched result fails validation.
	//
	// Parameters:
	//   - patch: the partial shape update
	//
	// Returns:
	//   - error: an error wrapping ErrInvalidGradientConfig, or nil
	UpdateShape(patch ShapePatch) error

	// ApplyPreset replaces the color stops with the named preset's.
	//
	// Parameters:
	//   - name: the preset name (see PresetNames)
	//
	// Returns:
	//   - error: an error wrapping ErrInvalidGradientConfig if the name is unknown
	ApplyPreset(name string) error

	// ToggleDistanceMode switches between elliptical and rounded-rectangular
	// falloff and returns the mode now in effect.
	//
	// Returns:
	//   - DistanceMode: the active mode after the toggle
	ToggleDistanceMode() DistanceMode

	// Snapshot renders the current gradient state on the CPU at the given pixel
	// size and writes it to path as a PNG. Uses the reference evaluator, so the
	// file matches what the GPU displays up to display clamping.
	//
	// Parameters:
	//   - path: the output PNG file path
	//   - width: image width in pixels
	//   - height: image height in pixels
	//
	// Returns:
	//   - error: an error if rendering or writing fails
	Snapshot(path string, width, height int) error
}

var _ Controller = &controller{}

// NewController creates the field controller: it validates the merged
// configuration, builds the camera, fullscreen quad, material, and shaders,
// and assembles the scene that renders the field. The scene is created active.
//
// Parameters:
//   - win: the window providing the render surface dimensions (must not be nil)
//   - r: the renderer to draw with (must not be nil)
//   - options: functional options overriding the default gradient configuration
//
// Returns:
//   - Controller: the ready-to-render controller
//   - error: ErrRenderSurfaceUnavailable if win or r is nil, or an error
//     wrapping ErrInvalidGradientConfig if the merged configuration is invalid
func NewController(win window.Window, r renderer.Renderer, options ...ControllerBuilderOption) (Controller, error) {
	if win == nil {
		return nil, fmt.Errorf("%w: no window", ErrRenderSurfaceUnavailable)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no renderer", ErrRenderSurfaceUnavailable)
	}

	defaultStops, _ := Preset(DefaultPresetName)
	c := &controller{
		mu:    &sync.RWMutex{},
		shape: DefaultShapeConfig(),
		stops: defaultStops,
	}

	for _, opt := range options {
		opt(c)
	}

	if err := ValidateStops(c.stops); err != nil {
		return nil, err
	}
	if err := c.shape.Validate(); err != nil {
		return nil, err
	}

	vertexShader := shader.NewShaderFromSource("field_vert", shader.ShaderTypeVertex, fieldVertexSource)
	fragmentShader := shader.NewShaderFromSource("field_frag", shader.ShaderTypeFragment, fieldFragmentSource)

	cam := camera.NewCamera()
	cam.SetViewport(win.Width(), win.Height())

	halfWidth, halfHeight := cam.Bounds()
	quad := model.NewFullscreenQuad(
		model.WithName("field_quad"),
		model.WithHalfExtents(halfWidth, halfHeight),
	)

	c.mat = material.NewMaterial(
		material.WithPipelineKey("gradient_field"),
		material.WithBindGroupProvider(bgp.NewBindGroupProvider("field_material")),
		material.WithShapeParams(c.gpuShapeParams()),
		material.WithGradientStops(c.gpuGradientStops()),
	)

	c.scn = scene.NewScene("light_field", cam, r, quad, c.mat, vertexShader, fragmentShader, scene.WithActive(true))

	return c, nil
}

func (c *controller) Scene() scene.Scene {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scn
}

func (c *controller) Shape() ShapeConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shape
}

func (c *controller) Colors() []ColorStop {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ColorStop, len(c.stops))
	copy(out, c.stops)
	return out
}

func (c *controller) UpdateColors(stops []ColorStop) error {
	if err := ValidateStops(stops); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stops = make([]ColorStop, len(stops))
	copy(c.stops, stops)

	// Full reconstruction of the stops uniform, plus the shape uniform since
	// it carries the stop count.
	c.mat.SetGradientStops(c.gpuGradientStops())
	c.mat.SetShapeParams(c.gpuShapeParams())
	return nil
}

func (c *controller) UpdateShape(patch ShapePatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.shape.Apply(patch)
	if err := next.Validate(); err != nil {
		return err
	}

	c.shape = next
	c.mat.SetShapeParams(c.gpuShapeParams())
	return nil
}

func (c *controller) ApplyPreset(name string) error {
	stops, err := Preset(name)
	if err != nil {
		return err
	}
	return c.UpdateColors(stops)
}

func (c *controller) ToggleDistanceMode() DistanceMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shape.DistanceMode == DistanceModeEllipse {
		c.shape.DistanceMode = DistanceModeRoundedRect
	} else {
		c.shape.DistanceMode = DistanceModeEllipse
	}
	c.mat.SetShapeParams(c.gpuShapeParams())
	return c.shape.DistanceMode
}

// gpuShapeParams converts the controller's shape state to the GPU uniform
// mirror. Callers must hold at least a read lock.
func (c *controller) gpuShapeParams() material.GPUShapeParams {
	mode := material.DistanceModeEllipse
	if c.shape.DistanceMode == DistanceModeRoundedRect {
		mode = material.DistanceModeRoundedRect
	}
	return material.GPUShapeParams{
		AspectRatio:     float32(c.shape.AspectRatio),
		VerticalStretch: float32(c.shape.VerticalStretch),
		HorizontalWidth: float32(c.shape.HorizontalWidth),
		Feather:         float32(c.shape.Feather),
		Intensity:       float32(c.shape.Intensity),
		RectBlend:       float32(c.shape.RectBlend),
		DistanceMode:    mode,
		StopCount:       uint32(len(c.stops)),
	}
}

// gpuGradientStops packs the stop sequence into the fixed-capacity GPU array:
// rgb in xyz, position in w. Callers must hold at least a read lock.
func (c *controller) gpuGradientStops() material.GPUGradientStops {
	var out material.GPUGradientStops
	for i, stop := range c.stops {
		out.Stops[i] = [4]float32{
			float32(stop.Color.R),
			float32(stop.Color.G),
			float32(stop.Color.B),
			float32(stop.Position),
		}
	}
	return out
}
