package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// NewGlassScene creates a row of glass spheres lit by a small emissive sphere
// and a glowing ceiling, between coloured walls
func NewGlassScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	camera, err := buildCamera(defaultCameraConfig(), cameraOverrides)
	if err != nil {
		return nil, err
	}

	s := NewScene("glass", camera, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 500,
		MaxBounces:      7,
	})

	// Create materials
	clearGlass := &material.Material{
		Albedo:       core.NewVec3(1, 1, 1),
		Specular:     core.NewVec3(1, 1, 1),
		Fresnel0:     0.3,
		Transparency: 1.0,
		N:            1.1,
	}
	blue := &material.Material{
		Albedo:      core.NewVec3(0, 0, 1),
		Specular:    core.NewVec3(1, 1, 1),
		Specularity: 0.1,
		Roughness:   1.0,
		Fresnel0:    0.8,
		N:           1.1,
	}

	white := &material.Material{
		Albedo:    core.NewVec3(1, 1, 1),
		Specular:  core.NewVec3(1, 1, 1),
		Roughness: 1.0,
		Fresnel0:  1.0,
		N:         1.0,
	}
	red := white.With(func(m *material.Material) { m.Albedo = core.NewVec3(1, 0, 0) })
	green := white.With(func(m *material.Material) { m.Albedo = core.NewVec3(0, 1, 0) })

	ceiling := &material.Material{Emissive: core.NewVec3(1.2, 1.2, 1.2)}
	bulb := &material.Material{Emissive: core.NewVec3(3, 3, 3)}

	s.Add(
		geometry.NewSphere(core.NewVec3(0.3, 0, -3.0), 0.3, clearGlass),
		geometry.NewSphere(core.NewVec3(0, 0, -2.0), 0.3, clearGlass),
		geometry.NewSphere(core.NewVec3(-0.2, 0, -1.5), 0.3, clearGlass),
		geometry.NewSphere(core.NewVec3(0.7, 0, -2.3), 0.3, blue),
		geometry.NewSphere(core.NewVec3(0, 0.8, -0.5), 0.3, bulb),

		geometry.NewPlane(core.NewVec3(0, 0, -8), core.NewVec3(0, 0, 1), red),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white),
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), green),
		geometry.NewPlane(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), ceiling),
	)

	return s, nil
}
