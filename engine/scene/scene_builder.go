package scene

import (
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer/pipeline"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithPipelineOptions appends extra pipeline builder options applied when the scene
// registers its render pipeline (e.g. blending or cull mode overrides). The vertex
// and fragment shaders are always set by the scene itself.
//
// Parameters:
//   - opts: the pipeline options to apply during pipeline registration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPipelineOptions(opts ...pipeline.PipelineBuilderOption) SceneBuilderOption {
	return func(s *scene) {
		s.pipelineOpts = append(s.pipelineOpts, opts...)
	}
}
