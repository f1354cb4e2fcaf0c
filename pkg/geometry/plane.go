package geometry

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal vector
	Material *material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (*material.HitRecord, bool) {
	t, ok := planeDistance(ray, p.Point, p.Normal)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}

	// Both sides of a plane are visible; the normal is flipped to face the ray
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// Surface returns the plane's material
func (p *Plane) Surface() *material.Material {
	return p.Material
}

// planeDistance solves for the distance along ray to the plane through point
// with the given normal. A ray parallel to the plane divides by zero and is
// rejected as a non-finite distance.
func planeDistance(ray core.Ray, point, normal core.Vec3) (float64, bool) {
	t := -ray.Origin.Subtract(point).Dot(normal) / ray.Direction.Dot(normal)
	return t, validDistance(t)
}
