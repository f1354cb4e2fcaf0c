package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// SequenceSampler replays a fixed sequence of values, wrapping around at the end
type SequenceSampler struct {
	values []float64
	next   int
}

// NewSequenceSampler creates a sampler that cycles through values
func NewSequenceSampler(values ...float64) *SequenceSampler {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &SequenceSampler{values: values}
}

// Get1D returns the next value of the sequence
func (s *SequenceSampler) Get1D() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// SampleInUnitCube returns a point uniformly distributed in [-1,1]^3
func SampleInUnitCube(sampler Sampler) Vec3 {
	return NewVec3(
		2*sampler.Get1D()-1,
		2*sampler.Get1D()-1,
		2*sampler.Get1D()-1,
	)
}

// SampleUnitVector returns a uniformly distributed unit vector using rejection sampling
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		p := SampleInUnitCube(sampler)
		lengthSq := p.LengthSquared()
		// Reject the origin as well, it has no direction
		if lengthSq < 1.0 && lengthSq > 1e-12 {
			return p.Normalize()
		}
	}
}

// SampleUniformHemisphere returns a uniform unit vector flipped into the hemisphere around normal
func SampleUniformHemisphere(normal Vec3, sampler Sampler) Vec3 {
	v := SampleUnitVector(sampler)
	if normal.Dot(v) < 0 {
		return v.Negate()
	}
	return v
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sampler Sampler) Vec3 {
	phi := 2.0 * math.Pi * sampler.Get1D()
	theta := math.Acos(math.Sqrt(sampler.Get1D()))

	sinTheta := math.Sin(theta)
	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), math.Cos(theta))

	// Rotate local +z onto the normal
	tangent, bitangent := orthonormalBasis(normal)
	return tangent.Multiply(local.X).Add(bitangent.Multiply(local.Y)).Add(normal.Multiply(local.Z))
}

// orthonormalBasis returns two unit vectors perpendicular to n and to each other
func orthonormalBasis(n Vec3) (Vec3, Vec3) {
	var nt Vec3
	if math.Abs(n.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(n).Normalize()
	bitangent := n.Cross(tangent)
	return tangent, bitangent
}
