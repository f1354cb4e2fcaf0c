package scene

import (
	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/geometry"
	"github.com/df07/go-montecarlo-tracer/pkg/material"
)

// NewGalleryScene creates four spheres of mixed glossy and transmissive
// materials in front of faintly glowing walls
func NewGalleryScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	camera, err := buildCamera(defaultCameraConfig(), cameraOverrides)
	if err != nil {
		return nil, err
	}

	s := NewScene("gallery", camera, SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 200,
		MaxBounces:      7,
	})

	// Create materials
	pink := &material.Material{
		Albedo:       core.NewVec3(1.0, 0.5, 0.5),
		Specular:     core.NewVec3(1, 1, 1),
		Specularity:  0.3,
		Roughness:    0.001,
		Transparency: 1.0,
		N:            1.2,
	}
	glowingGreen := &material.Material{
		Albedo:       core.NewVec3(0.5, 1.0, 0.5),
		Emissive:     core.NewVec3(5, 5, 5),
		Roughness:    0.3,
		Transparency: 1.0,
		N:            1.2,
	}
	blue := &material.Material{
		Albedo:       core.NewVec3(0.5, 0.5, 1.0),
		Specular:     core.NewVec3(1, 1, 1),
		Specularity:  0.5,
		Roughness:    1.0,
		Transparency: 1.0,
		N:            1.2,
	}
	grey := &material.Material{
		Albedo:       core.NewVec3(0.8, 0.8, 0.8),
		Specular:     core.NewVec3(1, 1, 1),
		Specularity:  0.2,
		Roughness:    0.15,
		Transparency: 1.0,
		N:            1.2,
	}

	ground := &material.Material{
		Albedo:      core.NewVec3(0.73, 0.7, 0.7),
		Specular:    core.NewVec3(1, 1, 1),
		Specularity: 0.3,
		Roughness:   0.45,
		Fresnel0:    0.7,
		N:           1.3,
	}
	backWall := &material.Material{
		Albedo:    core.NewVec3(0.9, 0.5, 0.9),
		Emissive:  core.NewVec3(0.4, 0.4, 0.4),
		Roughness: 0.4,
		Fresnel0:  0.7,
		N:         1.3,
	}
	sideWall := backWall.With(func(m *material.Material) {
		m.Albedo = core.NewVec3(0.5, 0.9, 0.5)
		m.Roughness = 0.9
	})

	s.Add(
		geometry.NewSphere(core.NewVec3(0.2, -0.4, -3.0), 0.5, pink),
		geometry.NewSphere(core.NewVec3(0.6, -0.74, -2.5), 0.26, glowingGreen),
		geometry.NewSphere(core.NewVec3(-0.6, 0.3, -3.4), 0.4, blue),
		geometry.NewSphere(core.NewVec3(-0.4, -0.6, -2.3), 0.4, grey),

		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewPlane(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0), sideWall),
		geometry.NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), backWall),
	)

	return s, nil
}
