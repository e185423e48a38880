package field

// ControllerBuilderOption is a functional option for configuring a controller
// before validation. Values set here are validated once, in NewController.
type ControllerBuilderOption func(*controller)

// WithGradientColors sets the initial color stop sequence.
//
// Parameters:
//   - stops: the stop sequence (2 to 8 stops, strictly ascending positions in [0, 1])
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithGradientColors(stops []ColorStop) ControllerBuilderOption {
	return func(c *controller) {
		c.stops = make([]ColorStop, len(stops))
		copy(c.stops, stops)
	}
}

// WithPreset sets the initial color stops from a named preset. Unknown preset
// names are ignored, keeping the default stops.
//
// Parameters:
//   - name: the preset name (see PresetNames)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithPreset(name string) ControllerBuilderOption {
	return func(c *controller) {
		if stops, err := Preset(name); err == nil {
			c.stops = stops
		}
	}
}

// WithShape replaces the entire initial shape configuration.
//
// Parameters:
//   - shape: the shape configuration
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithShape(shape ShapeConfig) ControllerBuilderOption {
	return func(c *controller) {
		c.shape = shape
	}
}

// WithAspectRatio sets the horizontal pre-scale applied to the centered UV
// offset before the distance calculation.
//
// Parameters:
//   - ratio: the aspect ratio multiplier (must be positive)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithAspectRatio(ratio float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.AspectRatio = ratio
	}
}

// WithVerticalStretch sets the vertical extent divisor of the gradient shape.
//
// Parameters:
//   - stretch: the vertical stretch (must be positive)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithVerticalStretch(stretch float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.VerticalStretch = stretch
	}
}

// WithHorizontalWidth sets the horizontal extent divisor of the gradient shape.
//
// Parameters:
//   - width: the horizontal width (must be positive)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithHorizontalWidth(width float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.HorizontalWidth = width
	}
}

// WithFeather sets the edge softness added to the falloff range.
//
// Parameters:
//   - feather: the feather amount (must be positive)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithFeather(feather float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.Feather = feather
	}
}

// WithIntensity sets the brightness multiplier applied to the final color.
//
// Parameters:
//   - intensity: the intensity multiplier (must be positive)
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithIntensity(intensity float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.Intensity = intensity
	}
}

// WithRectBlend sets how far the rounded-rectangle mode leans from the
// elliptical distance toward the rectangular one.
//
// Parameters:
//   - blend: the blend factor in [0, 1]
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithRectBlend(blend float64) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.RectBlend = blend
	}
}

// WithDistanceMode sets the initial falloff mode.
//
// Parameters:
//   - mode: DistanceModeEllipse or DistanceModeRoundedRect
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithDistanceMode(mode DistanceMode) ControllerBuilderOption {
	return func(c *controller) {
		c.shape.DistanceMode = mode
	}
}

// WithSnapshotWorkers overrides the worker count used for CPU snapshot
// rendering. Values below 1 are ignored, keeping the runtime default.
//
// Parameters:
//   - workers: the number of row-rendering workers
//
// Returns:
//   - ControllerBuilderOption: the option function
func WithSnapshotWorkers(workers int) ControllerBuilderOption {
	return func(c *controller) {
		if workers > 0 {
			c.snapshotWorkers = workers
		}
	}
}
