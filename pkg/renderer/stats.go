package renderer

import (
	"image"
	"time"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/integrator"
)

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// WorkerStats describes the share of a render done by one worker
type WorkerStats struct {
	WorkerID    int
	ColumnStart int // First column, inclusive
	ColumnEnd   int // Last column, exclusive
	Pixels      int
	Samples     int
	Paths       integrator.PathStats
	Duration    time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int
	Height       int
	Seed         int64 // Seed actually used, after resolving a zero seed
	Workers      []WorkerStats
	TotalPixels  int
	TotalSamples int
	Paths        integrator.PathStats
	Duration     time.Duration
}

// addWorker folds a worker's counters into the totals
func (rs *RenderStats) addWorker(ws WorkerStats) {
	rs.Workers = append(rs.Workers, ws)
	rs.TotalPixels += ws.Pixels
	rs.TotalSamples += ws.Samples
	rs.Paths.Add(ws.Paths)
}

// AverageBounces returns the mean number of surface interactions per path
func (rs RenderStats) AverageBounces() float64 {
	if rs.Paths.Paths == 0 {
		return 0
	}
	return float64(rs.Paths.Bounces) / float64(rs.Paths.Paths)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(count)
}
