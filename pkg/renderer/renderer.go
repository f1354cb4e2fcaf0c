package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/df07/go-montecarlo-tracer/pkg/log"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

var logger = log.New("renderer")

// Render validates the scene and configuration, then renders the scene with a
// WorkerPool. Configuration errors are returned before any worker starts.
func Render(ctx context.Context, s *scene.Scene, config RenderConfig, progress ProgressFunc) (*image.RGBA, RenderStats, error) {
	if s == nil {
		return nil, RenderStats{}, ErrSceneNotDefined
	}
	if s.Camera == nil {
		return nil, RenderStats{}, ErrCameraNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("renderer: invalid scene %q: %w", s.Name, err)
	}

	pool := NewWorkerPool(NewRaytracer(s, config), config.NumWorkers, config.Seed)
	pool.OnProgress(progress)

	logger.Infof(
		"rendering %q at %dx%d, %d spp, %d bounces, %d workers, seed %d",
		s.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxBounces,
		pool.GetNumWorkers(), pool.Seed(),
	)

	img, stats, err := pool.Render(ctx)
	if err != nil {
		logger.Warningf("render of %q stopped early: %v", s.Name, err)
		return img, stats, err
	}

	for _, ws := range stats.Workers {
		logger.Debugf("worker %d rendered columns [%d, %d) in %s", ws.WorkerID, ws.ColumnStart, ws.ColumnEnd, ws.Duration)
	}
	logger.Infof("rendered %d samples in %s, mean luminance %.3f", stats.TotalSamples, stats.Duration, CalculateAverageLuminance(img))

	return img, stats, nil
}
