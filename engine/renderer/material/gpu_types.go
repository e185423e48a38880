package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGradientStops is the fixed capacity of the GPU gradient stop array.
// The uniform always carries this many slots; StopCount in GPUShapeParams
// tells the shader how many are valid.
const MaxGradientStops = 8

// Distance mode values carried in GPUShapeParams.DistanceMode. They select which
// distance function the fragment shader evaluates.
const (
	// DistanceModeEllipse computes the Euclidean distance of the scaled offset,
	// producing elliptical falloff contours.
	DistanceModeEllipse uint32 = 0

	// DistanceModeRoundedRect blends the Euclidean distance with the Chebyshev
	// distance, producing rounded-rectangle falloff contours.
	DistanceModeRoundedRect uint32 = 1
)

// GPUShapeParamsSource is the canonical WGSL definition of the ShapeParams struct.
// Matches GPUShapeParams layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/shape_params.wgsl
var GPUShapeParamsSource string

// GPUShapeParams is the GPU-aligned uniform carrying the gradient field's shape
// and intensity controls. Matches the WGSL ShapeParams struct layout exactly
// (see GPUShapeParamsSource). Size: 32 bytes (six f32 + two u32, std430 aligned).
type GPUShapeParams struct {
	AspectRatio     float32 // offset  0: horizontal compression applied to the centered UV offset
	VerticalStretch float32 // offset  4: divisor for the vertical offset component
	HorizontalWidth float32 // offset  8: divisor for the horizontal offset component
	Feather         float32 // offset 12: softness added to the falloff range upper edge
	Intensity       float32 // offset 16: brightness multiplier applied to the final color
	RectBlend       float32 // offset 20: blend factor between Euclidean and Chebyshev distance
	DistanceMode    uint32  // offset 24: DistanceModeEllipse or DistanceModeRoundedRect
	StopCount       uint32  // offset 28: number of valid gradient stops (2..MaxGradientStops)
}

// Size returns the size of the GPUShapeParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUShapeParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUShapeParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUShapeParams) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.AspectRatio))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.VerticalStretch))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.HorizontalWidth))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Feather))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.RectBlend))
	binary.LittleEndian.PutUint32(buf[24:28], g.DistanceMode)
	binary.LittleEndian.PutUint32(buf[28:32], g.StopCount)
	return buf
}

// GPUGradientStopsSource is the canonical WGSL definition of the GradientStops struct.
// Matches GPUGradientStops layout exactly (128 bytes, std430 aligned).
//
//go:embed assets/gradient_stops.wgsl
var GPUGradientStopsSource string

// GPUGradientStops is the GPU-aligned uniform holding the packed color stop array.
// Each vec4 carries linear RGB in xyz and the stop's normalized position in w.
// Slots beyond GPUShapeParams.StopCount are ignored by the shader.
// Matches the WGSL GradientStops struct layout exactly (see GPUGradientStopsSource).
// Size: 128 bytes (MaxGradientStops x vec4<f32>, std430 aligned).
type GPUGradientStops struct {
	Stops [MaxGradientStops][4]float32 // offset 0: rgb color + position per stop (16 bytes each)
}

// Size returns the size of the GPUGradientStops struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUGradientStops) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUGradientStops struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload.
func (g *GPUGradientStops) Marshal() []byte {
	buf := make([]byte, 128)
	for i := range MaxGradientStops {
		for j := range 4 {
			binary.LittleEndian.PutUint32(buf[(i*4+j)*4:], math.Float32bits(g.Stops[i][j]))
		}
	}
	return buf
}
