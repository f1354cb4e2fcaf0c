package material

import (
	"fmt"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
)

// Material describes the optical response of a surface. Materials are shared
// by pointer between many shapes and must not be modified once a scene is built.
type Material struct {
	Albedo       core.Vec3 // Diffuse reflectance per channel
	Specular     core.Vec3 // Tint applied on mirror bounces
	Specularity  float64   // Probability of a mirror bounce
	Emissive     core.Vec3 // Radiance emitted when a ray hits the surface
	Roughness    float64   // 0 = mirror reflection, 1 = fully diffuse bounce
	Fresnel0     float64   // Reflectance at normal incidence (Schlick)
	Transparency float64   // Fraction of albedo kept on transmission
	N            float64   // Refractive index, 0 for opaque surfaces
}

// Transmissive reports whether rays may refract through the surface
func (m *Material) Transmissive() bool {
	return m.N > 0
}

// Validate checks that probabilities lie in [0,1] and the refractive index is not negative
func (m *Material) Validate() error {
	probabilities := []struct {
		name  string
		value float64
	}{
		{"specularity", m.Specularity},
		{"roughness", m.Roughness},
		{"fresnel0", m.Fresnel0},
		{"transparency", m.Transparency},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("material: %s %g outside [0,1]", p.name, p.value)
		}
	}
	if m.N < 0 {
		return fmt.Errorf("material: negative refractive index %g", m.N)
	}
	for name, v := range map[string]core.Vec3{"albedo": m.Albedo, "specular": m.Specular, "emissive": m.Emissive} {
		if !v.IsFinite() || v.X < 0 || v.Y < 0 || v.Z < 0 {
			return fmt.Errorf("material: %s %v must be finite and non-negative", name, v)
		}
	}
	return nil
}

// With returns a copy of the material after applying fn to it. It is meant for
// deriving presets while a scene is being built.
func (m Material) With(fn func(*Material)) *Material {
	fn(&m)
	return &m
}

var (
	one  = core.NewVec3(1, 1, 1)
	zero = core.Vec3{}
)

// Preset materials
var (
	// Default is a dull, slightly rough surface
	Default = &Material{
		Roughness: 0.2,
		Fresnel0:  0.70,
		N:         1.3,
	}

	// Mirror reflects everything without tint
	Mirror = &Material{
		Albedo:   one,
		Fresnel0: 1.0,
	}

	// Glossy is a blurred mirror
	Glossy = Mirror.With(func(m *Material) { m.Roughness = 0.5 })

	// Diffuse is a white lambertian-like surface
	Diffuse = Mirror.With(func(m *Material) { m.Roughness = 1.0 })

	// Tomato is a diffuse surface with an occasional sharp highlight
	Tomato = Diffuse.With(func(m *Material) {
		m.Specular = one
		m.Specularity = 0.1
		m.Fresnel0 = 0.8
	})

	// Glass is a clear dielectric with no reflectance at normal incidence
	Glass = Mirror.With(func(m *Material) {
		m.Fresnel0 = 0.0
		m.Transparency = 1.0
		m.N = 1.2
	})

	// FresnelGlass reflects a little at grazing angles
	FresnelGlass = Glass.With(func(m *Material) { m.Fresnel0 = 0.1 })

	// WhiteLight is an area emitter that absorbs everything it does not emit
	WhiteLight = &Material{
		Emissive: core.NewVec3(1.5, 1.5, 1.5),
	}

	// Black absorbs all light and emits nothing
	Black = &Material{
		Albedo:   zero,
		Fresnel0: 0,
	}
)
