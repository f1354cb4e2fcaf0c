package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// ProgressFunc is called after every finished column with the number of
// columns done so far. It runs on worker goroutines and must be safe for
// concurrent use.
type ProgressFunc func(done, total int)

// WorkerPool renders an image by splitting its columns into one contiguous
// range per worker. Workers write disjoint pixels, so the image needs no lock.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	seed       int64
	progress   ProgressFunc
	completed  atomic.Int64
}

// Worker renders the columns [columnStart, columnEnd) with its own sampler
type Worker struct {
	ID          int
	columnStart int
	columnEnd   int
	sampler     core.Sampler
	pool        *WorkerPool // Reference to parent pool for callback access
}

// NewWorkerPool creates a worker pool. numWorkers <= 0 uses runtime.NumCPU()
// and a zero seed is replaced by one derived from the current time.
func NewWorkerPool(raytracer *Raytracer, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if width := raytracer.Config().Width; numWorkers > width {
		numWorkers = width
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		seed:       seed,
	}
}

// OnProgress registers a progress callback
func (wp *WorkerPool) OnProgress(fn ProgressFunc) {
	wp.progress = fn
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Seed returns the resolved base seed
func (wp *WorkerPool) Seed() int64 {
	return wp.seed
}

// workers partitions the image columns: worker t owns [t*W/N, (t+1)*W/N)
func (wp *WorkerPool) workers() []*Worker {
	width := wp.raytracer.Config().Width
	workers := make([]*Worker, wp.numWorkers)
	for t := 0; t < wp.numWorkers; t++ {
		workers[t] = &Worker{
			ID:          t,
			columnStart: t * width / wp.numWorkers,
			columnEnd:   (t + 1) * width / wp.numWorkers,
			sampler:     core.NewSeededSampler(wp.seed + int64(t)),
			pool:        wp,
		}
	}
	return workers
}

// Render runs every worker to completion and returns the finished image.
// Cancelling ctx stops workers at the next column boundary. If any column was
// skipped the partial image is returned with ErrInterrupted.
func (wp *WorkerPool) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	config := wp.raytracer.Config()
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	wp.completed.Store(0)

	workers := wp.workers()
	results := make([]WorkerStats, len(workers))

	start := time.Now()
	var wg sync.WaitGroup
	for _, worker := range workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			results[w.ID] = w.run(ctx, img)
		}(worker)
	}
	wg.Wait()

	stats := RenderStats{
		Width:    config.Width,
		Height:   config.Height,
		Seed:     wp.seed,
		Duration: time.Since(start),
	}
	for _, ws := range results {
		stats.addWorker(ws)
	}

	// A cancel that lands after the last column leaves a complete image
	if stats.TotalPixels < config.Width*config.Height {
		return img, stats, fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}
	return img, stats, nil
}

// run renders the worker's columns top to bottom, checking ctx between columns
func (w *Worker) run(ctx context.Context, img *image.RGBA) WorkerStats {
	rt := w.pool.raytracer
	config := rt.Config()
	total := config.Width

	stats := WorkerStats{
		WorkerID:    w.ID,
		ColumnStart: w.columnStart,
		ColumnEnd:   w.columnEnd,
	}
	start := time.Now()

	for i := w.columnStart; i < w.columnEnd; i++ {
		if ctx.Err() != nil {
			break
		}

		for j := 0; j < config.Height; j++ {
			radiance := rt.PixelRadiance(i, j, w.sampler, &stats.Paths)
			img.SetRGBA(i, j, vec3ToColor(radiance))
			stats.Pixels++
			stats.Samples += config.SamplesPerPixel
		}

		done := int(w.pool.completed.Add(1))
		if w.pool.progress != nil {
			w.pool.progress(done, total)
		}
	}

	stats.Duration = time.Since(start)
	return stats
}
