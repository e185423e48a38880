package main

import (
	"fmt"
	"log"
	"time"

	"github.com/timf34/JamesTurrellDigitalArt/common"
	"github.com/timf34/JamesTurrellDigitalArt/engine"
	"github.com/timf34/JamesTurrellDigitalArt/engine/renderer"
	"github.com/timf34/JamesTurrellDigitalArt/engine/window"
	"github.com/timf34/JamesTurrellDigitalArt/field"
)

const (
	// shapeStep is the per-keypress increment for the shape parameters.
	shapeStep = 0.05
	// featherMin and featherMax bound the feather adjustment keys.
	featherMin = 0.1
	featherMax = 1.0
	// intensityMin and intensityMax bound both the intensity keys and the
	// scroll wheel.
	intensityMin = 0.1
	intensityMax = 3.0
	// scrollStep is the intensity change per scroll wheel notch.
	scrollStep = 0.05
	// snapshotWidth and snapshotHeight size the saved PNG.
	snapshotWidth  = 1920
	snapshotHeight = 1080
)

func main() {
	eng := engine.NewEngine(
		engine.WithTickRate(60),
		engine.WithWindow(window.NewWindow(
			window.WithTitle("Light Field"),
			window.WithWidth(1280),
			window.WithHeight(720),
		)),
	)

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)

	ctrl, err := field.NewController(eng.Window(), r)
	if err != nil {
		log.Fatalf("[LightField] %v", err)
	}

	eng.AddScene(0, ctrl.Scene())

	setupInput(eng, ctrl)
	printControls()

	eng.Run()
}

// setupInput wires the keyboard and scroll wheel to the field controller.
// All adjustments go through UpdateShape or ApplyPreset, so an out-of-range
// value is rejected as a whole and the previous state keeps rendering.
func setupInput(eng engine.Engine, ctrl field.Controller) {
	presets := field.PresetNames()

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyQ:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.VerticalStretch = ptr(s.VerticalStretch + shapeStep)
			})
		case common.KeyA:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.VerticalStretch = ptr(s.VerticalStretch - shapeStep)
			})
		case common.KeyW:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.HorizontalWidth = ptr(s.HorizontalWidth + shapeStep)
			})
		case common.KeyS:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.HorizontalWidth = ptr(s.HorizontalWidth - shapeStep)
			})
		case common.KeyE:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.Feather = ptr(common.Clamp(s.Feather+shapeStep, featherMin, featherMax))
			})
		case common.KeyD:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.Feather = ptr(common.Clamp(s.Feather-shapeStep, featherMin, featherMax))
			})
		case common.KeyR:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.Intensity = ptr(common.Clamp(s.Intensity+shapeStep, intensityMin, intensityMax))
			})
		case common.KeyF:
			adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
				p.Intensity = ptr(common.Clamp(s.Intensity-shapeStep, intensityMin, intensityMax))
			})
		case common.KeyM:
			mode := ctrl.ToggleDistanceMode()
			log.Printf("[LightField] Distance mode: %s", mode)
		case common.KeyP:
			path := fmt.Sprintf("light_field_%s.png", time.Now().Format("20060102_150405"))
			if err := ctrl.Snapshot(path, snapshotWidth, snapshotHeight); err != nil {
				log.Printf("[LightField] Snapshot failed: %v", err)
				return
			}
			log.Printf("[LightField] Snapshot saved to %s", path)
		default:
			if keyCode >= common.Key1 && keyCode <= common.Key9 {
				idx := int(keyCode - common.Key1)
				if idx >= len(presets) {
					return
				}
				if err := ctrl.ApplyPreset(presets[idx]); err != nil {
					log.Printf("[LightField] Preset %q: %v", presets[idx], err)
					return
				}
				log.Printf("[LightField] Preset: %s", presets[idx])
			}
		}
	})

	eng.Window().SetScrollCallback(func(delta float32) {
		adjustShape(ctrl, func(p *field.ShapePatch, s field.ShapeConfig) {
			p.Intensity = ptr(common.Clamp(s.Intensity+float64(delta)*scrollStep, intensityMin, intensityMax))
		})
	})
}

// adjustShape builds a patch from the current shape and applies it. Rejected
// patches are logged and dropped.
func adjustShape(ctrl field.Controller, apply func(*field.ShapePatch, field.ShapeConfig)) {
	var patch field.ShapePatch
	apply(&patch, ctrl.Shape())
	if err := ctrl.UpdateShape(patch); err != nil {
		log.Printf("[LightField] Shape update rejected: %v", err)
	}
}

func printControls() {
	fmt.Println("Light Field")
	fmt.Println("  1-9         gradient presets:", field.PresetNames())
	fmt.Println("  Q / A       vertical stretch + / -")
	fmt.Println("  W / S       horizontal width + / -")
	fmt.Println("  E / D       feather + / -")
	fmt.Println("  R / F       intensity + / - (scroll wheel also adjusts)")
	fmt.Println("  M           toggle ellipse / rounded-rectangle falloff")
	fmt.Println("  P           save a PNG snapshot")
	fmt.Println("  Esc         quit")
}

func ptr(v float64) *float64 {
	return &v
}
