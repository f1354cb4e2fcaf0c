package geometry

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// NewCube creates an axis-aligned cube as six quads with outward normals.
// origin is the minimum corner and size the edge length.
func NewCube(origin core.Vec3, size float64, mat *material.Material) []Shape {
	x := core.NewVec3(size, 0, 0)
	y := core.NewVec3(0, size, 0)
	z := core.NewVec3(0, 0, size)

	return []Shape{
		NewQuad(origin, x, z, mat),        // Bottom (-Y)
		NewQuad(origin.Add(y), z, x, mat), // Top (+Y)
		NewQuad(origin, z, y, mat),        // Left (-X)
		NewQuad(origin.Add(x), y, z, mat), // Right (+X)
		NewQuad(origin, y, x, mat),        // Back (-Z)
		NewQuad(origin.Add(z), x, y, mat), // Front (+Z)
	}
}
