package model

// ModelBuilderOption is a functional option for configuring a quad Model.
// Use the With* functions to create options.
type ModelBuilderOption func(m *model)

// WithName sets the mesh identifier.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithHalfExtents sets the quad's initial half-extents in world space.
// Non-positive values are ignored, leaving the defaults in place.
//
// Parameters:
//   - halfWidth: horizontal half-extent
//   - halfHeight: vertical half-extent
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithHalfExtents(halfWidth, halfHeight float32) ModelBuilderOption {
	return func(m *model) {
		if halfWidth > 0 {
			m.halfWidth = halfWidth
		}
		if halfHeight > 0 {
			m.halfHeight = halfHeight
		}
	}
}
