package integrator

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// Termination reports why a path stopped
type Termination int

const (
	// TerminatedMiss means the ray left the scene without hitting anything
	TerminatedMiss Termination = iota
	// TerminatedBounceLimit means the path used its whole bounce budget
	TerminatedBounceLimit
)

func (t Termination) String() string {
	switch t {
	case TerminatedMiss:
		return "miss"
	case TerminatedBounceLimit:
		return "bounce-limit"
	default:
		return "unknown"
	}
}
