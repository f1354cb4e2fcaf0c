package material

import (
	"math"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// AirIndex is the refractive index carried by rays outside any transmissive volume
const AirIndex = core.AirIndex

// Fresnel calculates the reflectance using Schlick's approximation.
// cosine is clamped to [0,1] so grazing or back-facing hits reflect fully.
func Fresnel(f0, cosine float64) float64 {
	cosine = math.Max(0, math.Min(cosine, 1))
	return f0 + (1-f0)*math.Pow(1-cosine, 5)
}

// Refract bends the unit direction dir through a boundary from index n1 into n2.
// normal must face against dir. It returns false on total internal reflection.
func Refract(dir, normal core.Vec3, n1, n2 float64) (core.Vec3, bool) {
	// Normal pointing into the transmission medium
	inward := normal.Negate()
	nd := inward.Dot(dir)

	ratio := n2 / n1
	radicand := nd*nd + ratio*ratio - 1
	if radicand < 0 {
		return core.Vec3{}, false
	}

	refracted := inward.Multiply(math.Sqrt(radicand) - nd).Add(dir).Multiply(n1 / n2)
	return refracted.Normalize(), true
}

// nextMedium returns the index the ray enters when crossing a surface of
// index n while carrying index current. A ray already inside leaves to air.
func nextMedium(current, n float64) float64 {
	if current == n {
		return AirIndex
	}
	return n
}
