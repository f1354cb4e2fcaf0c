package material

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection.
// A miss is reported as a nil record, so there is no placeholder material.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterKind identifies the branch taken at a bounce
type ScatterKind int

const (
	ScatterSpecular ScatterKind = iota
	ScatterTransmitted
	ScatterTotalInternal
	ScatterDiffuse
)

func (k ScatterKind) String() string {
	switch k {
	case ScatterSpecular:
		return "specular"
	case ScatterTransmitted:
		return "transmitted"
	case ScatterTotalInternal:
		return "total-internal-reflection"
	case ScatterDiffuse:
		return "diffuse"
	default:
		return "unknown"
	}
}
