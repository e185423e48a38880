package field

import (
	"errors"
	"testing"
)

func TestDefaultShapeConfigValid(t *testing.T) {
	if err := DefaultShapeConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestShapeValidate(t *testing.T) {
	base := DefaultShapeConfig()

	tests := []struct {
		name   string
		mutate func(*ShapeConfig)
	}{
		{"zero aspect ratio", func(c *ShapeConfig) { c.AspectRatio = 0 }},
		{"negative vertical stretch", func(c *ShapeConfig) { c.VerticalStretch = -0.5 }},
		{"zero horizontal width", func(c *ShapeConfig) { c.HorizontalWidth = 0 }},
		{"zero feather", func(c *ShapeConfig) { c.Feather = 0 }},
		{"negative intensity", func(c *ShapeConfig) { c.Intensity = -1 }},
		{"rect blend below range", func(c *ShapeConfig) { c.RectBlend = -0.1 }},
		{"rect blend above range", func(c *ShapeConfig) { c.RectBlend = 1.1 }},
		{"unknown distance mode", func(c *ShapeConfig) { c.DistanceMode = DistanceMode(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidGradientConfig) {
				t.Fatalf("error should wrap ErrInvalidGradientConfig, got %v", err)
			}
		})
	}
}

func TestShapeApplyPatch(t *testing.T) {
	base := DefaultShapeConfig()
	feather := 0.8
	mode := DistanceModeRoundedRect

	next := base.Apply(ShapePatch{Feather: &feather, DistanceMode: &mode})

	if next.Feather != 0.8 || next.DistanceMode != DistanceModeRoundedRect {
		t.Fatalf("patched fields not applied: %+v", next)
	}
	if next.AspectRatio != base.AspectRatio ||
		next.VerticalStretch != base.VerticalStretch ||
		next.HorizontalWidth != base.HorizontalWidth ||
		next.Intensity != base.Intensity ||
		next.RectBlend != base.RectBlend {
		t.Fatalf("unpatched fields changed: %+v", next)
	}
	if base.Feather != DefaultShapeConfig().Feather {
		t.Fatal("Apply mutated the receiver")
	}
}

func TestShapeApplyEmptyPatch(t *testing.T) {
	base := DefaultShapeConfig()
	if got := base.Apply(ShapePatch{}); got != base {
		t.Fatalf("empty patch changed the config: %+v", got)
	}
}

func TestDistanceModeString(t *testing.T) {
	if DistanceModeEllipse.String() != "ellipse" {
		t.Fatalf("ellipse mode String() = %q", DistanceModeEllipse.String())
	}
	if DistanceModeRoundedRect.String() != "rounded-rect" {
		t.Fatalf("rounded-rect mode String() = %q", DistanceModeRoundedRect.String())
	}
}
