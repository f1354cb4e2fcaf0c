package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/integrator"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + Green 0.7152 + Blue 0.0722 + Black 0 = 1.0 over 4 pixels
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}

	if got := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", got)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().IsZero() {
		t.Errorf("Expected black before any sample, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0.5))
	ps.AddSample(core.NewVec3(0, 1, 0.5))
	if got := ps.GetColor(); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected (0.5,0.5,0.5), got %v", got)
	}
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
}

func TestRenderStats_Totals(t *testing.T) {
	var rs RenderStats
	rs.addWorker(WorkerStats{WorkerID: 0, Pixels: 4, Samples: 8, Paths: integrator.PathStats{Paths: 8, Bounces: 20}})
	rs.addWorker(WorkerStats{WorkerID: 1, Pixels: 2, Samples: 4, Paths: integrator.PathStats{Paths: 4, Bounces: 4}})

	if rs.TotalPixels != 6 || rs.TotalSamples != 12 || len(rs.Workers) != 2 {
		t.Errorf("Unexpected totals %+v", rs)
	}
	if got := rs.AverageBounces(); got != 2 {
		t.Errorf("Expected 2 bounces per path, got %f", got)
	}
	if got := (RenderStats{}).AverageBounces(); got != 0 {
		t.Errorf("Expected 0 for no paths, got %f", got)
	}
}
