package renderer

import (
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

// RenderConfig contains everything a render needs besides the scene
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Paths traced per pixel
	MaxBounces      int   // Maximum surface interactions per path
	NumWorkers      int   // Worker goroutines, 0 = runtime.NumCPU()
	Seed            int64 // Base random seed, 0 = time-derived
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxBounces:      7,
	}
}

// MergeSamplingConfig starts from a scene's recommended sampling and applies
// every non-zero field of override
func MergeSamplingConfig(sampling scene.SamplingConfig, override RenderConfig) RenderConfig {
	result := RenderConfig{
		Width:           sampling.Width,
		Height:          sampling.Height,
		SamplesPerPixel: sampling.SamplesPerPixel,
		MaxBounces:      sampling.MaxBounces,
	}

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxBounces != 0 {
		result.MaxBounces = override.MaxBounces
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}

	return result
}

// Validate fails fast on a configuration no worker could render
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxBounces <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBounces, c.MaxBounces)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.NumWorkers)
	}
	return nil
}
