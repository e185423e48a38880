package material

import (
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a functional option for configuring a material.
// Use the With* functions to create options.
type MaterialBuilderOption func(m *material)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithShapeParams sets the initial shape uniform values.
//
// Parameters:
//   - params: the shape params to set
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithShapeParams(params GPUShapeParams) MaterialBuilderOption {
	return func(m *material) {
		m.shapeParams = params
	}
}

// WithGradientStops sets the initial packed color stop values.
//
// Parameters:
//   - stops: the gradient stops to set
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithGradientStops(stops GPUGradientStops) MaterialBuilderOption {
	return func(m *material) {
		m.gradientStops = stops
	}
}

// WithPipelineKey sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
