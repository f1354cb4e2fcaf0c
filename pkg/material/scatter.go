package material

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// SelfIntersectionOffset moves scattered ray origins off the surface they left
const SelfIntersectionOffset = 0.001

// Scatter applies one bounce at hit to path: it accumulates the surface
// emission, then picks a mirror, transmission or diffuse continuation and
// updates the ray, throughput and medium in place.
//
// The sampler is drawn once for the specular decision and once more for the
// transmission decision when the material is transmissive, plus whatever the
// chosen direction needs.
func Scatter(path *core.Path, hit *HitRecord, sampler core.Sampler) ScatterKind {
	mat := hit.Material
	dir := path.Ray.Direction
	n := hit.Normal

	k := Fresnel(mat.Fresnel0, -n.Dot(dir))

	path.Emitted = path.Emitted.Add(mat.Emissive.MultiplyVec(path.Throughput))

	above := hit.Point.Add(n.Multiply(SelfIntersectionOffset))

	if sampler.Get1D() < mat.Specularity {
		path.Ray = core.NewRay(above, Reflect(dir, n, 0, sampler))
		path.Throughput = path.Throughput.MultiplyVec(mat.Specular).Multiply(k)
		return ScatterSpecular
	}

	if mat.Transmissive() && sampler.Get1D() < 1-k {
		transmittance := mat.Albedo.Multiply(mat.Transparency)
		path.Throughput = path.Throughput.MultiplyVec(transmittance)

		next := nextMedium(path.Medium, mat.N)
		refracted, ok := Refract(dir, n, path.Medium, next)
		if !ok {
			// Beyond the critical angle: reflect and stay in the current medium
			path.Ray = core.NewRay(above, Reflect(dir, n, 0, sampler))
			return ScatterTotalInternal
		}

		below := hit.Point.Subtract(n.Multiply(SelfIntersectionOffset))
		path.Ray = core.NewRay(below, refracted)
		path.Medium = next
		return ScatterTransmitted
	}

	path.Ray = core.NewRay(above, Reflect(dir, n, mat.Roughness, sampler))
	path.Throughput = path.Throughput.MultiplyVec(mat.Albedo)
	return ScatterDiffuse
}
