package field

import (
	"errors"
	"sort"
	"testing"
)

func TestPresetsAllValid(t *testing.T) {
	for _, name := range PresetNames() {
		stops, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if err := ValidateStops(stops); err != nil {
			t.Fatalf("preset %q fails validation: %v", name, err)
		}
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("PresetNames() not sorted: %v", names)
	}
	found := false
	for _, name := range names {
		if name == DefaultPresetName {
			found = true
		}
	}
	if !found {
		t.Fatalf("default preset %q missing from %v", DefaultPresetName, names)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("no-such-preset")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !errors.Is(err, ErrInvalidGradientConfig) {
		t.Fatalf("error should wrap ErrInvalidGradientConfig, got %v", err)
	}
}

func TestPresetReturnsCopy(t *testing.T) {
	a, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}
	a[0].Color = Color{R: 0.123}

	b, err := Preset(DefaultPresetName)
	if err != nil {
		t.Fatal(err)
	}
	if b[0].Color.R == 0.123 {
		t.Fatal("mutating a returned preset leaked into the registry")
	}
}
