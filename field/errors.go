package field

import "errors"

var (
	// ErrInvalidGradientConfig is returned when a gradient configuration fails
	// validation: stop count outside [2, 8], positions not ascending, a position
	// outside [0, 1], a malformed hex color, or a non-positive shape value.
	// Wrapped errors carry the specific cause.
	ErrInvalidGradientConfig = errors.New("invalid gradient config")

	// ErrRenderSurfaceUnavailable is returned when the controller cannot acquire
	// a window or renderer to draw into.
	ErrRenderSurfaceUnavailable = errors.New("render surface unavailable")
)
