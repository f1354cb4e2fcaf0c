package core

// AirIndex is the refractive index carried by rays outside any transmissive volume
const AirIndex = 1.0

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3 // Expected to be unit length
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Path is the mutable transport state of a single light path sample.
// It is owned by one sample and never shared between goroutines.
type Path struct {
	Ray        Ray
	Throughput Vec3    // Multiplicative weight carried along the path
	Emitted    Vec3    // Radiance accumulated so far
	Medium     float64 // Refractive index of the medium the ray travels through
}

// NewPath starts a path at full throughput, no radiance, in air
func NewPath(ray Ray) Path {
	return Path{
		Ray:        ray,
		Throughput: NewVec3(1, 1, 1),
		Medium:     AirIndex,
	}
}
