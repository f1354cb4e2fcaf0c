package geometry

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edges.
// The edges need not be orthogonal.
type Quad struct {
	Corner   core.Vec3          // One corner of the quad
	UDir     core.Vec3          // First edge direction
	VDir     core.Vec3          // Second edge direction
	ULen     float64            // Length of the first edge
	VLen     float64            // Length of the second edge
	Normal   core.Vec3          // Normal vector (UDir × VDir)
	Material *material.Material // Material of the quad
	w        core.Vec3          // (u × v) / |u × v|², dual vector for edge coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat *material.Material) *Quad {
	uDir := u.Normalize()
	vDir := v.Normalize()

	cross := u.Cross(v)
	w := cross.Multiply(1.0 / cross.LengthSquared())

	return &Quad{
		Corner:   corner,
		UDir:     uDir,
		VDir:     vDir,
		ULen:     u.Length(),
		VLen:     v.Length(),
		Normal:   uDir.Cross(vDir).Normalize(),
		Material: mat,
		w:        w,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray) (*material.HitRecord, bool) {
	t, ok := planeDistance(ray, q.Corner, q.Normal)
	if !ok {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Edge coordinates of the hit, each in [0,1] inside the quad
	u := q.UDir.Multiply(q.ULen)
	v := q.VDir.Multiply(q.VLen)
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(v))
	beta := q.w.Dot(u.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}

	// Set face normal
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// Surface returns the quad's material
func (q *Quad) Surface() *material.Material {
	return q.Material
}
