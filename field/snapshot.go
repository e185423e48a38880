package field

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// RenderImage evaluates the gradient on the CPU at the given pixel size.
// Rows are distributed across a worker pool; each pixel samples the shading
// function at its center, so the result matches the GPU output up to the
// 8-bit display clamp applied here.
//
// Parameters:
//   - shape: the shape configuration to render
//   - stops: the color stop sequence
//   - width: image width in pixels
//   - height: image height in pixels
//   - workers: the number of row workers (values below 1 use runtime.NumCPU)
//
// Returns:
//   - *image.RGBA: the rendered image
//   - error: an error wrapping ErrInvalidGradientConfig if the inputs are invalid
func RenderImage(shape ShapeConfig, stops []ColorStop, width, height, workers int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d must be positive", ErrInvalidGradientConfig, width, height)
	}
	if err := ValidateStops(stops); err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := worker.NewDynamicWorkerPool(workers, height, 1*time.Second)

	// A WaitGroup provides the completion barrier since pool.Wait() blocks
	// until workers idle-exit.
	var wg sync.WaitGroup
	for y := 0; y < height; y++ {
		wg.Add(1)
		row := y
		pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()

				v := (float64(row) + 0.5) / float64(height)
				for x := 0; x < width; x++ {
					u := (float64(x) + 0.5) / float64(width)
					c := EvaluateUV(u, v, shape, stops)
					// Intensity can push channels above 1.0; the 8-bit clamp
					// happens only here, never in the shading math.
					img.SetRGBA(x, row, color.RGBA{
						R: channelByte(c.R),
						G: channelByte(c.G),
						B: channelByte(c.B),
						A: 255,
					})
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return img, nil
}

// SavePNG renders the gradient and writes it to path as a PNG.
//
// Parameters:
//   - path: the output file path
//   - shape: the shape configuration to render
//   - stops: the color stop sequence
//   - width: image width in pixels
//   - height: image height in pixels
//   - workers: the number of row workers (values below 1 use runtime.NumCPU)
//
// Returns:
//   - error: an error if rendering or writing fails
func SavePNG(path string, shape ShapeConfig, stops []ColorStop, width, height, workers int) error {
	img, err := RenderImage(shape, stops, width, height, workers)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

func (c *controller) Snapshot(path string, width, height int) error {
	c.mu.RLock()
	shape := c.shape
	stops := make([]ColorStop, len(c.stops))
	copy(stops, c.stops)
	workers := c.snapshotWorkers
	c.mu.RUnlock()

	return SavePNG(path, shape, stops, width, height, workers)
}
