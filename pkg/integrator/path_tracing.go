package integrator

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with
// emission gathered at every bounce. There is no environment light and no
// Russian roulette; paths end on a miss or when the bounce budget runs out.
type PathTracingIntegrator struct {
	MaxBounces int
}

var _ Integrator = (*PathTracingIntegrator)(nil)

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxBounces int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxBounces: maxBounces}
}

// PathStats counts what happened to traced paths. It is owned by a single
// worker and merged after rendering.
type PathStats struct {
	Paths    int64
	Bounces  int64
	Misses   int64
	Scatters [4]int64 // Indexed by material.ScatterKind
}

// Add merges other into s
func (s *PathStats) Add(other PathStats) {
	s.Paths += other.Paths
	s.Bounces += other.Bounces
	s.Misses += other.Misses
	for i := range s.Scatters {
		s.Scatters[i] += other.Scatters[i]
	}
}

// RayColor computes the radiance carried back along ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	path, _ := pt.Trace(ray, scene, sampler)
	return path.Emitted
}

// Trace follows one path from ray and returns its final transport state
func (pt *PathTracingIntegrator) Trace(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Path, Termination) {
	return pt.TraceWithStats(ray, scene, sampler, nil)
}

// TraceWithStats is Trace that also records counters into stats when it is not nil
func (pt *PathTracingIntegrator) TraceWithStats(ray core.Ray, scene *scene.Scene, sampler core.Sampler, stats *PathStats) (core.Path, Termination) {
	path := core.NewPath(ray)
	if stats != nil {
		stats.Paths++
	}

	for bounce := 0; bounce < pt.MaxBounces; bounce++ {
		hit, isHit := scene.ClosestHit(path.Ray)
		if !isHit {
			if stats != nil {
				stats.Misses++
			}
			return path, TerminatedMiss
		}

		kind := material.Scatter(&path, hit, sampler)
		if stats != nil {
			stats.Bounces++
			stats.Scatters[kind]++
		}
	}

	return path, TerminatedBounceLimit
}
