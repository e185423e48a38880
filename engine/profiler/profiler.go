package profiler

import (
	"log"
	"math"
	"runtime"
	"time"
)

// Profiler tracks frame pacing and memory statistics for a long-running
// display. Outputs stats to the log at a configurable interval. Frame time
// extremes are reported alongside the average because a decorative render
// loop should pace evenly; a high max frame time shows as a visible stutter
// even when the average FPS looks fine.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrameTime  time.Time
	minFrameMs     float64
	maxFrameMs     float64
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastTime:      now,
		lastFrameTime: now,
		minFrameMs:    math.MaxFloat64,
		// One line per second keeps the log readable while still catching
		// per-second pacing regressions.
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time range, heap usage, allocation rate,
// and GC activity.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()

	frameMs := float64(now.Sub(p.lastFrameTime).Microseconds()) / 1000.0
	p.lastFrameTime = now
	if frameMs < p.minFrameMs {
		p.minFrameMs = frameMs
	}
	if frameMs > p.maxFrameMs {
		p.maxFrameMs = frameMs
	}

	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; TotalAlloc is cumulative and tracks churn between
	// ticks.
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
	}

	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f-%.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last pause: %d µs)",
		fps, p.minFrameMs, p.maxFrameMs, heapMB, allocRateMB, gcCount, lastPauseUs)

	p.frameCount = 0
	p.minFrameMs = math.MaxFloat64
	p.maxFrameMs = 0
	p.lastTime = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
