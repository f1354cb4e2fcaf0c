package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/integrator"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

// Raytracer estimates pixel colors for a scene. It holds no mutable state,
// so one instance is shared by every worker.
type Raytracer struct {
	scene      *scene.Scene
	integrator *integrator.PathTracingIntegrator
	config     RenderConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(config.MaxBounces),
		config:     config,
	}
}

// Config returns the configuration the raytracer was built with
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// PixelRadiance averages SamplesPerPixel path estimates through pixel (i, j).
// stats may be nil.
func (rt *Raytracer) PixelRadiance(i, j int, sampler core.Sampler, stats *integrator.PathStats) core.Vec3 {
	ray := rt.scene.Camera.GetRay(i, j, rt.config.Width, rt.config.Height)

	var ps PixelStats
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		path, _ := rt.integrator.TraceWithStats(ray, rt.scene, sampler, stats)
		ps.AddSample(path.Emitted)
	}
	return ps.GetColor()
}

// PixelColor returns the clamped 8-bit color of pixel (i, j)
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) color.RGBA {
	return vec3ToColor(rt.PixelRadiance(i, j, sampler, nil))
}

// vec3ToColor clamps linear radiance to [0,1] and maps it to 8 bits without gamma
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = core.NewVec3(finiteOrZero(colorVec.X), finiteOrZero(colorVec.Y), finiteOrZero(colorVec.Z))

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
