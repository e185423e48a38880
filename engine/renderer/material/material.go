package material

import (
	"sync"

	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	mu *sync.Mutex

	name              string
	shapeParams       GPUShapeParams
	gradientStops     GPUGradientStops
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for the gradient field material, encapsulating the
// shape and color stop uniforms plus the GPU resource bindings needed for draw calls.
//
// The uniform values (shape params, gradient stops) are mutable so the field
// controller can push configuration changes between frames. GPU resource references
// (pipeline key, bind group provider) are likewise mutable so they can be configured
// after construction during scene setup. Accessors are mutex-guarded because input
// callbacks mutate the uniforms while the render goroutine reads them.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// ShapeParams retrieves the current shape uniform values.
	//
	// Returns:
	//   - GPUShapeParams: the shape params snapshot
	ShapeParams() GPUShapeParams

	// GradientStops retrieves the current packed color stop values.
	//
	// Returns:
	//   - GPUGradientStops: the gradient stops snapshot
	GradientStops() GPUGradientStops

	// SetShapeParams replaces the shape uniform values. The new values reach the
	// GPU on the next frame's staged buffer write.
	//
	// Parameters:
	//   - params: the shape params to set
	SetShapeParams(params GPUShapeParams)

	// SetGradientStops replaces the packed color stop values. The new values reach
	// the GPU on the next frame's staged buffer write.
	//
	// Parameters:
	//   - stops: the gradient stops to set
	SetGradientStops(stops GPUGradientStops)

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The defaults describe a two-stop white-to-black elliptical field; callers normally
// replace both uniforms immediately via the field controller.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:   &sync.Mutex{},
		name: "gradient_field",
		shapeParams: GPUShapeParams{
			AspectRatio:     1.0,
			VerticalStretch: 1.0,
			HorizontalWidth: 1.0,
			Feather:         0.0,
			Intensity:       1.0,
			RectBlend:       0.0,
			DistanceMode:    DistanceModeEllipse,
			StopCount:       2,
		},
		gradientStops: GPUGradientStops{
			Stops: [MaxGradientStops][4]float32{
				{1, 1, 1, 0},
				{0, 0, 0, 1},
			},
		},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) ShapeParams() GPUShapeParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shapeParams
}

func (m *material) GradientStops() GPUGradientStops {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gradientStops
}

func (m *material) SetShapeParams(params GPUShapeParams) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shapeParams = params
}

func (m *material) SetGradientStops(stops GPUGradientStops) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gradientStops = stops
}

func (m *material) PipelineKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindGroupProvider = provider
}
