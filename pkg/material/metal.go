package material

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Reflect mirrors dir about normal and blends the result toward a
// cosine-weighted direction around normal by roughness.
// Roughness 0 gives a perfect mirror and draws nothing from the sampler.
func Reflect(dir, normal core.Vec3, roughness float64, sampler core.Sampler) core.Vec3 {
	reflected := reflectVector(dir, normal).Normalize()
	if roughness <= 0 {
		return reflected
	}

	random := core.SampleCosineHemisphere(normal, sampler)
	blended := reflected.Multiply(1 - roughness).Add(random.Multiply(roughness))

	// Opposite vectors cancel exactly when roughness is 0.5; fall back to the sample
	if blended.LengthSquared() < 1e-18 {
		return random
	}
	return blended.Normalize()
}
