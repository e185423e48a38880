// gradient.go is the CPU reference implementation of the gradient shading
// function. It mirrors the fragment shader in field/assets/field_frag.wgsl
// step for step so the GPU output and the snapshot renderer share one color
// function, and so the math is unit-testable without a device.
package field

import (
	"fmt"
	"math"

	"github.com/timf34/JamesTurrellDigitalArt/common"
)

// Distance computes the shape distance of a stretched offset (h, v) under the
// given mode. Ellipse mode is the Euclidean norm sqrt(h²+v²); rounded-rect mode
// blends that norm with the Chebyshev norm max(|h|,|v|) by rectBlend.
//
// Parameters:
//   - h: the horizontal stretched offset
//   - v: the vertical stretched offset
//   - mode: the distance mode to evaluate
//   - rectBlend: the weight toward the Chebyshev norm in rounded-rect mode
//
// Returns:
//   - float64: the shape distance
func Distance(h, v float64, mode DistanceMode, rectBlend float64) float64 {
	euclid := math.Sqrt(h*h + v*v)
	if mode != DistanceModeRoundedRect {
		return euclid
	}
	chebyshev := math.Max(math.Abs(h), math.Abs(v))
	return common.Lerp(euclid, chebyshev, rectBlend)
}

// LookupColor performs the piecewise-linear stop lookup at feathered distance d.
// Below the first stop the first color is returned; above the last stop the
// last color. If no consecutive stop pair brackets d (non-monotonic or gapped
// positions, which validation rejects on the public API), the result is black —
// the same degenerate output the shader produces.
//
// Parameters:
//   - stops: the gradient color stops
//   - d: the feathered distance in [0, 1]
//
// Returns:
//   - Color: the interpolated color
func LookupColor(stops []ColorStop, d float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if d <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if d >= last.Position {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if lo.Position <= d && d <= hi.Position {
			span := hi.Position - lo.Position
			if span <= 0 {
				return lo.Color
			}
			t := (d - lo.Position) / span
			return Color{
				R: common.Lerp(lo.Color.R, hi.Color.R, t),
				G: common.Lerp(lo.Color.G, hi.Color.G, t),
				B: common.Lerp(lo.Color.B, hi.Color.B, t),
			}
		}
	}
	return Color{} // no bracketing pair — black fallback
}

// EvaluateUV runs the full gradient shading function for a normalized surface
// coordinate (u, v) in [0,1]²: recenter, aspect correction, axis stretch,
// distance, feathered smoothstep, stop lookup, and intensity multiply. The
// returned channels may exceed 1 for over-bright configurations.
//
// Parameters:
//   - u: the horizontal surface coordinate in [0, 1]
//   - v: the vertical surface coordinate in [0, 1]
//   - shape: the shape parameters
//   - stops: the gradient color stops
//
// Returns:
//   - Color: the shaded, intensity-scaled color
func EvaluateUV(u, v float64, shape ShapeConfig, stops []ColorStop) Color {
	px := (u - 0.5) * shape.AspectRatio
	py := v - 0.5

	h := px / shape.HorizontalWidth
	vv := py / shape.VerticalStretch

	d := Distance(h, vv, shape.DistanceMode, shape.RectBlend)
	feathered := common.Smoothstep(0, 1+shape.Feather, d)

	c := LookupColor(stops, feathered)
	return Color{
		R: c.R * shape.Intensity,
		G: c.G * shape.Intensity,
		B: c.B * shape.Intensity,
	}
}

// ValidateStops checks a color stop sequence against the gradient contract:
// between 2 and 8 stops, strictly ascending positions, every position in [0, 1].
//
// Parameters:
//   - stops: the stop sequence to validate
//
// Returns:
//   - error: an error wrapping ErrInvalidGradientConfig, or nil
func ValidateStops(stops []ColorStop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 color stops, got %d", ErrInvalidGradientConfig, len(stops))
	}
	if len(stops) > maxStops {
		return fmt.Errorf("%w: at most %d color stops supported, got %d", ErrInvalidGradientConfig, maxStops, len(stops))
	}
	for i, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return fmt.Errorf("%w: stop %d position %v outside [0, 1]", ErrInvalidGradientConfig, i, stop.Position)
		}
		if i > 0 && stop.Position <= stops[i-1].Position {
			return fmt.Errorf("%w: stop positions must be strictly ascending (stop %d at %v after %v)",
				ErrInvalidGradientConfig, i, stop.Position, stops[i-1].Position)
		}
	}
	return nil
}
