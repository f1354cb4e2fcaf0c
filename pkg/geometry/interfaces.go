package geometry

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns nil, false on a miss; a returned record always has T > 0
// and a normal facing against the ray.
type Shape interface {
	Hit(ray core.Ray) (*material.HitRecord, bool)
	Surface() *material.Material
}

// validDistance rejects hits behind the origin and the NaN/Inf distances
// produced by parallel rays or zero directions
func validDistance(t float64) bool {
	return t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
