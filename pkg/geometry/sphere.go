package geometry

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. The ray direction must be unit length.
func (s *Sphere) Hit(ray core.Ray) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	dp := ray.Origin.Subtract(s.Center)

	b := ray.Direction.Dot(dp)
	discriminant := b*b - (dp.LengthSquared() - s.Radius*s.Radius)
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first; a negative one means the origin is inside the sphere
	t := -b - sqrtD
	if t < 0 {
		t = -b + sqrtD
	}
	if !validDistance(t) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// Surface returns the sphere's material
func (s *Sphere) Surface() *material.Material {
	return s.Material
}
