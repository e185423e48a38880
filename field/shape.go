package field

import "fmt"

// DistanceMode selects which distance function shapes the gradient falloff.
type DistanceMode int

const (
	// DistanceModeEllipse uses the Euclidean distance of the stretched offset,
	// producing elliptical falloff contours.
	DistanceModeEllipse DistanceMode = iota

	// DistanceModeRoundedRect blends the Euclidean distance with the Chebyshev
	// (max-norm) distance, producing a softened rectangle.
	DistanceModeRoundedRect
)

// String returns a human-readable name for the distance mode.
func (m DistanceMode) String() string {
	switch m {
	case DistanceModeEllipse:
		return "ellipse"
	case DistanceModeRoundedRect:
		return "rounded-rect"
	default:
		return fmt.Sprintf("DistanceMode(%d)", int(m))
	}
}

// ShapeConfig is the immutable set of shape parameters for the gradient field.
// All numeric fields must be positive. AspectRatio here is the gradient's own
// horizontal scale, independent of the viewport aspect the camera tracks.
type ShapeConfig struct {
	// AspectRatio is the horizontal compression applied to the centered UV offset.
	AspectRatio float64

	// VerticalStretch divides the vertical offset component; larger values
	// elongate the field vertically.
	VerticalStretch float64

	// HorizontalWidth divides the horizontal offset component; larger values
	// widen the field.
	HorizontalWidth float64

	// Feather softens the falloff by raising the smoothstep upper edge to 1+Feather.
	Feather float64

	// Intensity is a brightness multiplier with no upper bound; over-bright
	// values are display-clamped downstream.
	Intensity float64

	// RectBlend is the weight toward the Chebyshev distance in rounded-rect
	// mode. Ignored in ellipse mode.
	RectBlend float64

	// DistanceMode selects elliptical or rounded-rectangular falloff.
	DistanceMode DistanceMode
}

// ShapePatch is a partial update to a ShapeConfig. Only non-nil fields are
// applied; everything else is left untouched.
type ShapePatch struct {
	AspectRatio     *float64
	VerticalStretch *float64
	HorizontalWidth *float64
	Feather         *float64
	Intensity       *float64
	RectBlend       *float64
	DistanceMode    *DistanceMode
}

// Apply produces a new ShapeConfig with the patch's non-nil fields overwriting
// the receiver's values. The receiver is not modified.
//
// Parameters:
//   - patch: the partial update to apply
//
// Returns:
//   - ShapeConfig: the resulting configuration
func (c ShapeConfig) Apply(patch ShapePatch) ShapeConfig {
	next := c
	if patch.AspectRatio != nil {
		next.AspectRatio = *patch.AspectRatio
	}
	if patch.VerticalStretch != nil {
		next.VerticalStretch = *patch.VerticalStretch
	}
	if patch.HorizontalWidth != nil {
		next.HorizontalWidth = *patch.HorizontalWidth
	}
	if patch.Feather != nil {
		next.Feather = *patch.Feather
	}
	if patch.Intensity != nil {
		next.Intensity = *patch.Intensity
	}
	if patch.RectBlend != nil {
		next.RectBlend = *patch.RectBlend
	}
	if patch.DistanceMode != nil {
		next.DistanceMode = *patch.DistanceMode
	}
	return next
}

// Validate checks that every shape value is positive and the distance mode is
// known. RectBlend is additionally required to stay in [0, 1] since it is an
// interpolation weight.
//
// Returns:
//   - error: an error wrapping ErrInvalidGradientConfig describing the first
//     offending field, or nil
func (c ShapeConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"aspectRatio", c.AspectRatio},
		{"verticalStretch", c.VerticalStretch},
		{"horizontalWidth", c.HorizontalWidth},
		{"feather", c.Feather},
		{"intensity", c.Intensity},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidGradientConfig, check.name, check.value)
		}
	}
	if c.RectBlend < 0 || c.RectBlend > 1 {
		return fmt.Errorf("%w: rectBlend must be in [0, 1], got %v", ErrInvalidGradientConfig, c.RectBlend)
	}
	switch c.DistanceMode {
	case DistanceModeEllipse, DistanceModeRoundedRect:
	default:
		return fmt.Errorf("%w: unknown distance mode %d", ErrInvalidGradientConfig, int(c.DistanceMode))
	}
	return nil
}

// DefaultShapeConfig returns the default shape parameters: an elliptical field
// with AspectRatio 0.5, VerticalStretch 0.6, HorizontalWidth 0.4, Feather 0.4,
// Intensity 1.2, and RectBlend 0.3.
//
// Returns:
//   - ShapeConfig: the default configuration
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		AspectRatio:     0.5,
		VerticalStretch: 0.6,
		HorizontalWidth: 0.4,
		Feather:         0.4,
		Intensity:       1.2,
		RectBlend:       0.3,
		DistanceMode:    DistanceModeEllipse,
	}
}
