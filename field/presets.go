package field

import (
	"fmt"
	"sort"
)

// presets maps preset names to their color stop sequences. Every entry must
// satisfy ValidateStops; NewController and ApplyPreset rely on that.
var presets = map[string][]ColorStop{
	// DefaultPresetName: the soft purple ramp the field starts with.
	"purple": {
		{Position: 0.0, Color: MustParseHexColor("#8B6FC3")},
		{Position: 0.5, Color: MustParseHexColor("#C3B2E8")},
		{Position: 1.0, Color: MustParseHexColor("#E8E0F5")},
	},
	"peach": {
		{Position: 0.0, Color: MustParseHexColor("#F7B267")},
		{Position: 0.3, Color: MustParseHexColor("#F4845F")},
		{Position: 0.6, Color: MustParseHexColor("#F27059")},
		{Position: 0.8, Color: MustParseHexColor("#F9DCC4")},
	},
	"teal": {
		{Position: 0.0, Color: MustParseHexColor("#0F7173")},
		{Position: 0.5, Color: MustParseHexColor("#5BC0BE")},
		{Position: 1.0, Color: MustParseHexColor("#D9F4F2")},
	},
	"ember": {
		{Position: 0.0, Color: MustParseHexColor("#D7263D")},
		{Position: 0.4, Color: MustParseHexColor("#F46036")},
		{Position: 0.7, Color: MustParseHexColor("#FCAB64")},
		{Position: 1.0, Color: MustParseHexColor("#2E1B2C")},
	},
	"dusk": {
		{Position: 0.0, Color: MustParseHexColor("#2D3047")},
		{Position: 0.5, Color: MustParseHexColor("#7678ED")},
		{Position: 1.0, Color: MustParseHexColor("#F9C8D9")},
	},
}

// DefaultPresetName is the preset the controller starts with when no explicit
// gradient colors are supplied.
const DefaultPresetName = "purple"

// Preset returns a copy of the named preset's color stops.
//
// Parameters:
//   - name: the preset name
//
// Returns:
//   - []ColorStop: a copy of the preset's stops
//   - error: an error wrapping ErrInvalidGradientConfig if the name is unknown
func Preset(name string) ([]ColorStop, error) {
	stops, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidGradientConfig, name)
	}
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	return out, nil
}

// PresetNames returns the available preset names in sorted order, which gives
// the command a stable digit-to-preset key mapping.
//
// Returns:
//   - []string: the sorted preset names
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
